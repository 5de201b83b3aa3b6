package databases

// Stores groups one typed store per collection
type Stores struct {
	Users     UserDatabase
	Reports   ReportDatabase
	Bins      BinDatabase
	Schedules ScheduleDatabase
	Drivers   DriverDatabase
}

// NewStores builds every collection store on top of db
func NewStores(db DatabaseHelper) Stores {
	return Stores{
		Users:     NewUserDatabase(db),
		Reports:   NewReportDatabase(db),
		Bins:      NewBinDatabase(db),
		Schedules: NewScheduleDatabase(db),
		Drivers:   NewDriverDatabase(db),
	}
}
