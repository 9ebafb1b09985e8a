package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks. An empty corpus degrades health but
// the server keeps answering (every query just yields "no information").
type Service struct {
	corpus CorpusChecker
}

// New creates a Service.
func New(corpus CorpusChecker) *Service {
	return &Service{corpus: corpus}
}

// Check runs health checks against all components.
func (s *Service) Check() Report {
	checks := make(map[string]CheckResult)

	if err := s.corpus.Ping(); err != nil {
		checks["corpus"] = CheckError
	} else {
		checks["corpus"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
