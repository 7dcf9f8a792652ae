package vanilla

// ChromeClass is a typed identifier for the structural classes the renderer
// always emits next to the caller's style classes.
type ChromeClass string

const (
	ClassRoot        ChromeClass = "fs-select"
	ClassError       ChromeClass = "fs-select--error"
	ClassDisabled    ChromeClass = "fs-select--disabled"
	ClassInput       ChromeClass = "fs-select__input"
	ClassIcon        ChromeClass = "fs-select__icon"
	ClassAsterisk    ChromeClass = "fs-select__asterisk"
	ClassHelper      ChromeClass = "fs-select__helper"
	ClassHelperError ChromeClass = "fs-select__helper--error"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"root":        string(ClassRoot),
		"error":       string(ClassError),
		"disabled":    string(ClassDisabled),
		"input":       string(ClassInput),
		"icon":        string(ClassIcon),
		"asterisk":    string(ClassAsterisk),
		"helper":      string(ClassHelper),
		"helperError": string(ClassHelperError),
	}
}
