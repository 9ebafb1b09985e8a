package health

// CorpusChecker reports corpus availability.
type CorpusChecker interface {
	Ping() error
}
