package model

// ThemeMode selects the UI palette
type ThemeMode string

const (
	ThemeDark   ThemeMode = "dark"
	ThemeLight  ThemeMode = "light"
	ThemeSystem ThemeMode = "system"
)

// PomodoroSettings configures the timer. Durations are in minutes.
type PomodoroSettings struct {
	WorkDuration            int  `json:"work_duration"`
	ShortBreakDuration      int  `json:"short_break_duration"`
	LongBreakDuration       int  `json:"long_break_duration"`
	SessionsBeforeLongBreak int  `json:"sessions_before_long_break"`
	AutoStartBreaks         bool `json:"auto_start_breaks"`
	AutoStartWork           bool `json:"auto_start_work"`
	SoundEnabled            bool `json:"sound_enabled"`
}

// AppSettings is the single process-wide preferences object.
type AppSettings struct {
	Theme             ThemeMode        `json:"theme"`
	Language          string           `json:"language"`
	HapticsEnabled    bool             `json:"haptics_enabled"`
	SoundEnabled      bool             `json:"sound_enabled"`
	DefaultPriority   Priority         `json:"default_priority"`
	Pomodoro          PomodoroSettings `json:"pomodoro"`
	DailyGoal         int              `json:"daily_goal"`
	TrackProductivity bool             `json:"track_productivity"`
}

// DefaultSettings returns the hard-coded defaults that persisted partial
// settings are merged onto at load time. Adding a field here is the whole
// migration story: absent persisted fields keep the default.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:           ThemeDark,
		Language:        "he",
		HapticsEnabled:  true,
		SoundEnabled:    true,
		DefaultPriority: PriorityP2,
		Pomodoro: PomodoroSettings{
			WorkDuration:            25,
			ShortBreakDuration:      5,
			LongBreakDuration:       15,
			SessionsBeforeLongBreak: 4,
			AutoStartBreaks:         true,
			AutoStartWork:           false,
			SoundEnabled:            true,
		},
		DailyGoal:         5,
		TrackProductivity: true,
	}
}

// SettingsPatch holds optional top-level settings updates
type SettingsPatch struct {
	Theme             *ThemeMode
	Language          *string
	HapticsEnabled    *bool
	SoundEnabled      *bool
	DefaultPriority   *Priority
	DailyGoal         *int
	TrackProductivity *bool
}

// PomodoroPatch holds optional pomodoro sub-object updates
type PomodoroPatch struct {
	WorkDuration            *int
	ShortBreakDuration      *int
	LongBreakDuration       *int
	SessionsBeforeLongBreak *int
	AutoStartBreaks         *bool
	AutoStartWork           *bool
	SoundEnabled            *bool
}
