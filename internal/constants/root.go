package constants

import "time"

// TabID identifies one of the sections reachable from the tab bar
type TabID string

const (
	AppName           = "awawa"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/awawa/config.toml"
	DefaultAssetsDir  = "public"
	LogFileName       = "awawa.log"

	// TargetFormat is the layout of the countdown target literal (local time)
	TargetFormat  = "2006-01-02 15:04:05"
	DefaultTarget = "2025-04-04 00:00:00"

	// TargetLabelFormat is how the target date is shown under the countdown
	TargetLabelFormat = "January 2, 2006"

	MovieNightURL = "https://rave.io/?openRaveId=9082957e-1171-4716-9aa3-4748e82147ac"

	// UI timing
	TickInterval      = time.Second
	ReasonHighlight   = time.Second
	StatusMessageTTL  = 3 * time.Second
	ImageNotFoundText = "Image not found"

	// Tab ids, in display order
	TabCountdown TabID = "countdown"
	TabMemories  TabID = "memories"
	TabNotes     TabID = "notes"
	TabReasons   TabID = "reasons"
	TabDate      TabID = "date"
)
