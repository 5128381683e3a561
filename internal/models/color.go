package models

// Color is a display token shared by the compliance bars and the risk matrix.
type Color string

const (
	ColorSuccess  Color = "success"
	ColorWarning  Color = "warning"
	ColorDanger   Color = "danger"
	ColorCritical Color = "critical"
)
