package tags

import "github.com/yohamta/donburi"

var (
	Kiosk = donburi.NewTag().SetName("Kiosk")
	Fade  = donburi.NewTag().SetName("Fade")
)
