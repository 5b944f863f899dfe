package listfiles

// DefaultOutputName is the file Run writes to when no output path is given.
const DefaultOutputName = "filesinfolder.txt"

// Config says which directory to list and where to write the listing.
type Config struct {
	// TargetDir is the directory whose regular files are listed. Empty means
	// the working directory.
	TargetDir string
	// OutputPath is the file the listing is written to. It is created or
	// truncated. Empty means DefaultOutputName in the working directory.
	OutputPath string
}

// DefaultConfig lists the working directory into DefaultOutputName.
func DefaultConfig() Config {
	return Config{
		TargetDir:  ".",
		OutputPath: DefaultOutputName,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TargetDir == "" {
		c.TargetDir = def.TargetDir
	}
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	return c
}

// Run writes the name of every regular file in cfg.TargetDir to
// cfg.OutputPath, one per line, each terminated by '\n'. The output file is
// opened before the directory is read, so if it lives in TargetDir it appears
// in its own listing.
//
// Any error opening, reading or writing is returned as is. Lines written
// before the error stay in the output file.
func Run(cfg Config) error {
	cfg = cfg.withDefaults()
	_, err := RegularFiles(cfg.TargetDir).WriteFile(cfg.OutputPath)
	return err
}
