package config

const (
	defaultInstallRoot = "~/rfactor"
	defaultLogDir      = "~/.local/share/paddock/logs"
	defaultCatalogDB   = "~/.cache/paddock/catalog.db"
	defaultPlayerName  = "Player"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InstallRoot: defaultInstallRoot,
			LogDir:      defaultLogDir,
			CatalogDB:   defaultCatalogDB,
		},
		Player: Player{
			Name: defaultPlayerName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
