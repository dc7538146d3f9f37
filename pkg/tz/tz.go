package tz

import (
	"time"
	_ "time/tzdata" // distroless images ship without a zoneinfo database
)

// Copenhagen is the shop's local time zone. Publication dates are shown in it.
var Copenhagen = mustLoad("Europe/Copenhagen")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("tz: load " + name + ": " + err.Error())
	}
	return loc
}
