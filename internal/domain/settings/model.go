package settings

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds the user preferences that persist across sessions.
type Settings struct {
	Theme Theme `json:"theme"`
}

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}
