/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
	JSON    bool   `mapstructure:"json"`
	Config  string `mapstructure:"config"`

	User UserConfig `mapstructure:"user"`
	Data DataConfig `mapstructure:"data" validate:"required"`
	Draw DrawConfig `mapstructure:"draw"`
	Plan PlanConfig `mapstructure:"plan"`
}

// UserConfig identifies the deck owner. Display only.
type UserConfig struct {
	Name string `mapstructure:"name"`
	Role string `mapstructure:"role"`
}

// DataConfig holds state storage configuration
type DataConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
}

// DrawConfig holds defaults for the weekly draw
type DrawConfig struct {
	Count         int  `mapstructure:"count" validate:"omitempty,min=3,max=5"`
	EnsureBalance bool `mapstructure:"ensureBalance"`
}

// PlanConfig holds planning defaults
type PlanConfig struct {
	WeeklyCapacityHours int `mapstructure:"weeklyCapacityHours" validate:"omitempty,min=1,max=80"`
	UndoWindowSeconds   int `mapstructure:"undoWindowSeconds" validate:"omitempty,min=1,max=300"`
}
