package version

// Version is set at build time with -ldflags "-X github.com/csconnell/hipchat-plugin/pkg/version.Version=v1.2.3"
var Version = "dev"

func String() string {
	return Version
}
