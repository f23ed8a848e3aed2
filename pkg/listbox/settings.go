package listbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
)

// SelectionMode controls whether rows can be selected.
type SelectionMode int

const (
	SelectionNone SelectionMode = iota
	SelectionSingle
	SelectionMultiple
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

func (m SelectionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *SelectionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "none":
		*m = SelectionNone
	case "single":
		*m = SelectionSingle
	case "multiple":
		*m = SelectionMultiple
	default:
		return fmt.Errorf("%w: selection mode %q", ErrInvalidSettings, text)
	}
	return nil
}

// Modifier is a keyboard modifier mask.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every bit of mask is set. An empty mask is never held.
func (m Modifier) Has(mask Modifier) bool {
	return mask != 0 && m&mask == mask
}

func (m Modifier) String() string {
	var names []string
	if m&ModShift != 0 {
		names = append(names, "shift")
	}
	if m&ModControl != 0 {
		names = append(names, "control")
	}
	if m&ModAlt != 0 {
		names = append(names, "alt")
	}
	if m&ModSuper != 0 {
		names = append(names, "super")
	}
	return strings.Join(names, "+")
}

func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts names joined with '+', such as "control+shift".
func (m *Modifier) UnmarshalText(text []byte) error {
	var mask Modifier
	for _, part := range strings.Split(string(text), "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "shift":
			mask |= ModShift
		case "control", "ctrl":
			mask |= ModControl
		case "alt":
			mask |= ModAlt
		case "super", "meta":
			mask |= ModSuper
		default:
			return fmt.Errorf("%w: modifier %q", ErrInvalidSettings, part)
		}
	}
	*m = mask
	return nil
}

// Settings holds the tunables of a list box.
type Settings struct {
	SelectionMode         SelectionMode `toml:"selection_mode" yaml:"selection_mode"`
	ActivateOnSingleClick bool          `toml:"activate_on_single_click" yaml:"activate_on_single_click"`

	FocusLineWidth int32 `toml:"focus_line_width" yaml:"focus_line_width"` // Width of the focus indicator line
	FocusPadding   int32 `toml:"focus_padding" yaml:"focus_padding"`       // Gap between the focus indicator and the row

	// ModifySelection is held to move the cursor without changing the
	// selection.
	ModifySelection Modifier `toml:"modify_selection" yaml:"modify_selection"`

	AutoScrollMargin   float64       `toml:"auto_scroll_margin" yaml:"auto_scroll_margin"`
	AutoScrollInterval time.Duration `toml:"auto_scroll_interval" yaml:"auto_scroll_interval"`

	// PageSize is the page movement distance when no adjustment is attached.
	PageSize int32 `toml:"page_size" yaml:"page_size"`
}

func DefaultSettings() Settings {
	return Settings{
		SelectionMode:         SelectionSingle,
		ActivateOnSingleClick: true,
		FocusLineWidth:        constants.DefaultFocusLineWidth,
		FocusPadding:          constants.DefaultFocusPadding,
		ModifySelection:       ModControl,
		AutoScrollMargin:      constants.DefaultAutoScrollMargin,
		AutoScrollInterval:    constants.DefaultAutoScrollInterval,
		PageSize:              constants.DefaultPageSize,
	}
}

// Validate rejects settings the list box cannot honor.
func (s Settings) Validate() error {
	switch {
	case s.SelectionMode == SelectionMultiple:
		return fmt.Errorf("%w: %w", ErrInvalidSettings, ErrMultipleSelection)
	case s.SelectionMode < SelectionNone || s.SelectionMode > SelectionMultiple:
		return fmt.Errorf("%w: selection mode %d", ErrInvalidSettings, s.SelectionMode)
	case s.FocusLineWidth < 0 || s.FocusPadding < 0:
		return fmt.Errorf("%w: focus line width and padding must not be negative", ErrInvalidSettings)
	case s.AutoScrollMargin < 0:
		return fmt.Errorf("%w: auto scroll margin must not be negative", ErrInvalidSettings)
	case s.AutoScrollInterval <= 0:
		return fmt.Errorf("%w: auto scroll interval must be positive", ErrInvalidSettings)
	case s.PageSize <= 0:
		return fmt.Errorf("%w: page size must be positive", ErrInvalidSettings)
	}
	return nil
}

// ParseSettings decodes settings in the given format ("toml" or "yaml").
// Keys that are absent keep their default values.
func ParseSettings(data []byte, format string) (Settings, error) {
	s := DefaultSettings()

	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.Unmarshal(data, &s)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return DefaultSettings(), fmt.Errorf("%w: %q", ErrUnknownSettingsFormat, format)
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("decode %s settings: %w", format, err)
	}

	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// LoadSettings reads a settings file. The format follows the extension:
// .toml, .yaml or .yml.
func LoadSettings(path string) (Settings, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "toml", "yaml", "yml":
	default:
		return DefaultSettings(), fmt.Errorf("%w: %s", ErrUnknownSettingsFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}

	s, err := ParseSettings(data, format)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
