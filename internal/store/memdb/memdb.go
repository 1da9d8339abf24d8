package memdb

const (
	// DefaultJournalSize is the default number of failures kept by the failure journal.
	DefaultJournalSize = 64
)

type config struct {
	journalSize uint
}

type Option func(*config)

// WithJournalSize allows us to specify how many recent failures are retained.
func WithJournalSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.journalSize = uint(size)
		}
	}
}
