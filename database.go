package conjecture

import (
	"github.com/joeycumines/go-conjecture/database"
	"github.com/joeycumines/go-conjecture/engine"
)

// NewDatabase returns the engine.Database spec.md §4.9 describes: a
// persistent database.DirectoryDatabase rooted at dir, falling back
// permanently to an in-process database.InMemoryDatabase (and warning once
// via reporter, if non-nil) the first time dir proves unwritable. Pass the
// result as Settings.Database; reporter should normally be the same value
// as Settings.Reporter, so the fallback warning reaches wherever the run's
// other progress narration goes.
func NewDatabase(dir string, reporter engine.Reporter) engine.Database {
	return engine.NewFallbackDatabase(
		database.NewDirectoryDatabase(dir),
		database.NewInMemoryDatabase(),
		reporter,
	)
}
