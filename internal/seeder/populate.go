package seeder

// ID list names shared by the populate plan.
const (
	listCustomers = "customers"
	listStaff     = "staff"
	listDrivers   = "drivers"
	listDepots    = "depots"
	listVehicles  = "vehicles"
	listRoutes    = "routes"
	listStops     = "stops"
	listBookings  = "bookings"
	listTrips     = "trips"
)

const (
	smallKeySpace = 100000
	largeKeySpace = 1000000
)

// PopulatePlan declares the initial population of the fleet schema, parents
// before children.
func PopulatePlan() Plan {
	return Plan{
		Name: "populate",
		Steps: []Step{
			tableDef[Customer]{
				table:    "Customer",
				columns:  customerColumns,
				produces: listCustomers,
				count:    1000,
				id:       func(c Customer) int { return c.CustomerNo },
				key:      func(c Customer) any { return c.CustomerNo },
				row:      newCustomer,
			}.step(),
			tableDef[Staff]{
				table:    "Staff",
				columns:  staffColumns,
				produces: listStaff,
				count:    200,
				id:       func(s Staff) int { return s.StaffNo },
				key:      func(s Staff) any { return s.StaffNo },
				row:      newStaff,
			}.step(),
			tableDef[Driver]{
				table:    "Driver",
				columns:  driverColumns,
				requires: []string{listStaff},
				produces: listDrivers,
				count:    100,
				id:       func(d Driver) int { return d.StaffNo },
				key:      func(d Driver) any { return d.StaffNo },
				row:      newDriver,

				keyFromParent: true,
			}.step(),
			tableDef[Depot]{
				table:    "Depot",
				columns:  depotColumns,
				requires: []string{listStaff},
				produces: listDepots,
				count:    50,
				id:       func(d Depot) int { return d.DepotNo },
				key:      func(d Depot) any { return d.DepotNo },
				row:      newDepot,
			}.step(),
			tableDef[Vehicle]{
				table:    "Vehicle",
				columns:  vehicleColumns,
				requires: []string{listDepots},
				produces: listVehicles,
				count:    200,
				id:       func(v Vehicle) int { return v.VehicleNo },
				key:      func(v Vehicle) any { return v.VehicleNo },
				row:      newVehicle,
			}.step(),
			tableDef[Route]{
				table:    "Route",
				columns:  routeColumns,
				requires: []string{listDepots},
				produces: listRoutes,
				count:    50000,
				id:       func(r Route) int { return r.RouteNo },
				key:      func(r Route) any { return r.RouteNo },
				row:      newRoute,
			}.step(),
			tableDef[Stop]{
				table:    "Stop",
				columns:  stopColumns,
				requires: []string{listRoutes},
				produces: listStops,
				count:    100000,
				id:       func(s Stop) int { return s.StopNo },
				key:      func(s Stop) any { return s.StopNo },
				row:      newStop,
			}.step(),
			tableDef[Booking]{
				table:    "Booking",
				columns:  bookingColumns,
				requires: []string{listCustomers},
				produces: listBookings,
				count:    50000,
				id:       func(b Booking) int { return b.BookingNo },
				key:      func(b Booking) any { return b.BookingNo },
				row:      newBooking,
			}.step(),
			tableDef[Trip]{
				table:    "Trip",
				columns:  tripColumns,
				requires: []string{listCustomers},
				produces: listTrips,
				count:    50000,
				id:       func(t Trip) int { return t.TripNo },
				key:      func(t Trip) any { return t.TripNo },
				row:      newTrip,
			}.step(),
			tableDef[Invoice]{
				table:    "Invoice",
				columns:  invoiceColumns,
				requires: []string{listBookings},
				count:    50000,
				key:      func(i Invoice) any { return i.InvoiceNo },
				row:      newInvoice,
			}.step(),
			tableDef[TripStop]{
				table:    "Trip_Stop",
				columns:  tripStopColumns,
				requires: []string{listTrips, listStops},
				count:    50000,
				row:      newTripStop,
			}.step(),
			tableDef[DriverVehicleRoute]{
				table:    "Driver_Vehicle_Route",
				columns:  driverVehicleRouteColumns,
				requires: []string{listDrivers, listVehicles, listRoutes},
				count:    50000,
				row:      newDriverVehicleRoute,
			}.step(),
		},
	}
}

func newCustomer(g *DataGenerator, _ IDLists) (Customer, error) {
	no, err := g.UniqueInt(1, smallKeySpace)
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		CustomerNo: no,
		HouseNo:    g.BuildingNumber(),
		Street:     g.StreetName(),
		City:       g.City(),
		Postcode:   g.Postcode(),
		Country:    g.Country(),
		PhoneNo:    g.Phone(),
		Email:      g.Email(),
		FirstName:  g.FirstName(),
		LastName:   g.LastName(),
		DateBirth:  g.DateOfBirth(),
		Gender:     g.Gender(),
	}, nil
}

func newStaff(g *DataGenerator, _ IDLists) (Staff, error) {
	no, err := g.UniqueInt(1, smallKeySpace)
	if err != nil {
		return Staff{}, err
	}
	return Staff{
		StaffNo:          no,
		FirstName:        g.FirstName(),
		LastName:         g.LastName(),
		HouseNo:          g.BuildingNumber(),
		Street:           g.StreetName(),
		City:             g.City(),
		Postcode:         g.Postcode(),
		PrivatePhoneNo:   g.Phone(),
		Email:            g.Email(),
		DateBirth:        g.DateOfBirth(),
		Gender:           g.Gender(),
		Position:         g.Job(),
		StartDateWork:    g.DateThisDecade(),
		EndDateWork:      g.DateThisDecade(),
		Salary:           g.Money(30000, 100000),
		EmploymentStatus: g.Choice("active", "inactive"),
	}, nil
}

func newDriver(g *DataGenerator, ids IDLists) (Driver, error) {
	staffNo, err := g.Pick(ids[listStaff])
	if err != nil {
		return Driver{}, err
	}
	licence, err := g.UniqueInt(1, smallKeySpace)
	if err != nil {
		return Driver{}, err
	}
	return Driver{StaffNo: staffNo, LicenceNo: licence}, nil
}

func newDepot(g *DataGenerator, ids IDLists) (Depot, error) {
	no, err := g.UniqueInt(1, smallKeySpace)
	if err != nil {
		return Depot{}, err
	}
	d := Depot{
		DepotNo:         no,
		HouseNo:         g.BuildingNumber(),
		Street:          g.StreetName(),
		City:            g.City(),
		Postcode:        g.Postcode(),
		PhoneNo:         g.Phone(),
		ParkingAreaSize: g.Money(500, 2000),
	}
	if d.OverseenBy, err = g.Pick(ids[listStaff]); err != nil {
		return Depot{}, err
	}
	return d, nil
}

func newVehicle(g *DataGenerator, ids IDLists) (Vehicle, error) {
	nums, err := uniqueInts(g, 2, 1, smallKeySpace)
	if err != nil {
		return Vehicle{}, err
	}
	v := Vehicle{
		VehicleNo:              nums[0],
		RegistrationNo:         nums[1],
		Brand:                  g.CarMaker(),
		Model:                  g.CarModel(),
		Category:               g.CarType(),
		YearManufacture:        g.Year(),
		PassengerSeatsCapacity: g.IntBetween(2, 60),
		BootSizeInLitres:       g.Money(100, 1000),
		Mileage:                g.Money(10000, 200000),
		NextMaintenanceDate:    g.DateLastTwoYears(),
	}
	if v.StationedAt, err = g.Pick(ids[listDepots]); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func newRoute(g *DataGenerator, ids IDLists) (Route, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return Route{}, err
	}
	depots, err := pick(g, ids, listDepots, listDepots)
	if err != nil {
		return Route{}, err
	}
	return Route{
		RouteNo:          no,
		StartDepot:       depots[0],
		EndDepot:         depots[1],
		PlannedStartDate: g.DateThisDecade(),
		PlannedStartTime: g.TimeOfDay(),
		PlannedEndDate:   g.DateThisDecade(),
		PlannedEndTime:   g.TimeOfDay(),
		ActualStartDate:  g.DateThisDecade(),
		ActualStartTime:  g.TimeOfDay(),
		ActualEndDate:    g.DateThisDecade(),
		ActualEndTime:    g.TimeOfDay(),
		CurrentStatus:    g.Choice("not started", "in progress", "completed", "interrupted"),
	}, nil
}

func newStop(g *DataGenerator, ids IDLists) (Stop, error) {
	nums, err := uniqueInts(g, 2, 1, largeKeySpace)
	if err != nil {
		return Stop{}, err
	}
	s := Stop{
		StopNo:          nums[0],
		RunningNo:       nums[1],
		LocationData:    g.Address(),
		PlannedStopDate: g.DateThisDecade(),
		PlannedStopTime: g.TimeOfDay(),
		Duration:        g.IntBetween(5, 120),
		StopType:        g.Choice("pick-up", "drop-off", "both", "break", "technical"),
	}
	if s.RunningNoWithinRoute, err = g.UniqueInt(1, largeKeySpace); err != nil {
		return Stop{}, err
	}
	s.ActualStopDate = g.DateThisDecade()
	s.ActualStopTime = g.TimeOfDay()
	if s.RouteNo, err = g.Pick(ids[listRoutes]); err != nil {
		return Stop{}, err
	}
	return s, nil
}

func newBooking(g *DataGenerator, ids IDLists) (Booking, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return Booking{}, err
	}
	b := Booking{BookingNo: no, BookingDate: g.DateThisDecade()}
	if b.BookedBy, err = g.Pick(ids[listCustomers]); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func newTrip(g *DataGenerator, ids IDLists) (Trip, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return Trip{}, err
	}
	t := Trip{
		TripNo:          no,
		Recurrence:      g.Choice("daily", "weekly", "monthly", "yearly", "one-time"),
		NumberOfPersons: g.IntBetween(1, 100),
		IsActivated:     g.Choice("yes", "no"),
	}
	if t.RequestedBy, err = g.Pick(ids[listCustomers]); err != nil {
		return Trip{}, err
	}
	return t, nil
}

func newInvoice(g *DataGenerator, ids IDLists) (Invoice, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return Invoice{}, err
	}
	i := Invoice{InvoiceNo: no, InvoiceDate: g.DateThisDecade(), Amount: g.Money(100, 10000)}
	if i.RelatedBooking, err = g.Pick(ids[listBookings]); err != nil {
		return Invoice{}, err
	}
	return i, nil
}

func newTripStop(g *DataGenerator, ids IDLists) (TripStop, error) {
	fk, err := pick(g, ids, listTrips, listStops)
	if err != nil {
		return TripStop{}, err
	}
	return TripStop{TripNo: fk[0], StopNo: fk[1]}, nil
}

func newDriverVehicleRoute(g *DataGenerator, ids IDLists) (DriverVehicleRoute, error) {
	fk, err := pick(g, ids, listDrivers, listVehicles, listRoutes)
	if err != nil {
		return DriverVehicleRoute{}, err
	}
	return DriverVehicleRoute{Driver: fk[0], Vehicle: fk[1], Route: fk[2]}, nil
}
