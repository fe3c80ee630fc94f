package util

import "time"

// The agency operates from Mérida, Yucatán.
var agencyLocation *time.Location

func init() {
	var err error
	agencyLocation, err = time.LoadLocation("America/Merida")
	if err != nil {
		agencyLocation = time.FixedZone("CST", -6*60*60)
	}
}

func NowLocal() time.Time {
	return time.Now().In(agencyLocation)
}

func FormatLocal(t time.Time, layout string) string {
	return t.In(agencyLocation).Format(layout)
}
