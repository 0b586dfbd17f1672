package constants

// Version is replaced at build time via -ldflags
var Version = "source"

const (
	GitHubOwner = "genieiq"
	GitHubRepo  = "cli"
)

var DocsURLMap = map[string]string{
	"docs":     "https://docs.genieiq.dev",
	"help":     "https://docs.genieiq.dev/help",
	"apps":     "https://docs.genieiq.dev/apps",
	"lakebase": "https://docs.genieiq.dev/lakebase",
}
