package version

import (
	"runtime"
	"runtime/debug"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Metadata describes the running binary
type Metadata struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Compiler  string `json:"compiler"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Revision  string `json:"revision,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

// Release is reported when the binary was built without a tag
const Release = "1.0.0"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the git tag when set, otherwise the release number
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	return Release
}

// Implementation returns the identity announced during the MCP handshake
func Implementation(name string) *mcp.Implementation {
	return &mcp.Implementation{Name: name, Version: Version()}
}

// Read returns the metadata for the named executable
func Read(name string) Metadata {
	metadata := Metadata{
		Name:     name,
		Version:  Version(),
		Compiler: runtime.Version(),
		Tag:      GitTag,
		Branch:   GitBranch,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		metadata.Source = info.Main.Path
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				metadata.Revision = s.Value
			case "vcs.time":
				metadata.BuildTime = s.Value
			case "vcs.modified":
				metadata.Modified = s.Value == "true"
			}
		}
	}
	return metadata
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Metadata) String() string {
	return types.Stringify(m)
}
