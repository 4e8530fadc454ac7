package types

// InstructionType defines the kind of a deployment instruction
type InstructionType string

const (
	// InstructionCopy copies Source (relative to the unpacked archive) to
	// Destination (relative to the game's mod directory)
	InstructionCopy InstructionType = "copy"
)

// CopyInstruction is one entry of a deployment plan. Plans are declarative;
// the host's deployment executor performs the copies.
type CopyInstruction struct {
	Type        InstructionType `json:"type" yaml:"type" toml:"type"`
	Source      string          `json:"source" yaml:"source" toml:"source"`
	Destination string          `json:"destination" yaml:"destination" toml:"destination"`
}

// NewCopy creates a copy instruction
func NewCopy(source, destination string) CopyInstruction {
	return CopyInstruction{
		Type:        InstructionCopy,
		Source:      source,
		Destination: destination,
	}
}

// TestResult answers whether an installer supports an archive.
// RequiredFiles is reserved by the host protocol and always empty.
type TestResult struct {
	Supported     bool     `json:"supported" yaml:"supported" toml:"supported"`
	RequiredFiles []string `json:"requiredFiles" yaml:"requiredFiles" toml:"requiredFiles"`
}

// NotSupported returns the negative TestResult
func NotSupported() TestResult {
	return TestResult{Supported: false, RequiredFiles: []string{}}
}

// Supported returns a TestResult with the given verdict
func Supported(ok bool) TestResult {
	return TestResult{Supported: ok, RequiredFiles: []string{}}
}

// InstallResult is the ordered list of instructions produced for an archive
type InstallResult struct {
	Instructions []CopyInstruction `json:"instructions" yaml:"instructions" toml:"instructions"`
}

// TestFunc decides whether an installer supports a file list for a game
type TestFunc func(files []string, gameID string) TestResult

// InstallFunc builds the instructions for an accepted file list
type InstallFunc func(files []string, destinationPath string) (InstallResult, error)
