package toml

const currentSchemaVersion = 1

type rulesFile struct {
	Version   int      `toml:"version"`
	ToggleAll []string `toml:"toggle_all"`
	Default   []string `toml:"default"`
}
