package notesapi

// Command represents a discrete application operation with its specific
// configuration. Implementations carry command-specific options as struct
// fields; shared configuration lives in [Config]. Commands are created by
// [Parse] and executed through the matching method on [App].
type Command interface {
	// Name returns the CLI sub-command identifier used for routing.
	Name() string
}

// RunCommand starts the HTTP server. All of its configuration currently
// comes from the shared [Config].
type RunCommand struct{}

func (c *RunCommand) Name() string { return "run" }

// MigrateCommand prepares the configured store's schema. Safe to run
// repeatedly; it only creates missing schema elements.
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string { return "migrate" }
