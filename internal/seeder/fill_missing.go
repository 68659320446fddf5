package seeder

const (
	listExistingCustomers = "existing_customers"
	listExistingBookings  = "existing_bookings"
	listExistingStops     = "existing_stops"
	listExistingStaff     = "existing_staff"
	listScheduledTrips    = "scheduled_trips"
)

// FillMissingPlan declares the rows added to the billing schema variant on
// top of data that is already in the database.
func FillMissingPlan() Plan {
	return Plan{
		Name: "fill-missing",
		Steps: []Step{
			preload("customer", "customerNo", listExistingCustomers),
			preload("booking", "bookingNo", listExistingBookings),
			preload("stop", "stopNo", listExistingStops),
			tableDef[BillingInvoice]{
				table:    "invoice",
				columns:  billingInvoiceColumns,
				requires: []string{listExistingBookings},
				count:    50000,
				key:      func(i BillingInvoice) any { return i.InvoiceNo },
				row:      newBillingInvoice,
			}.step(),
			tableDef[ScheduledTrip]{
				table:    "trip",
				columns:  tripColumns,
				requires: []string{listExistingCustomers},
				produces: listScheduledTrips,
				count:    50000,
				id:       func(t ScheduledTrip) int { return t.TripNo },
				key:      func(t ScheduledTrip) any { return t.TripNo },
				row:      newScheduledTrip,
			}.step(),
			tableDef[TripStop]{
				table:    "trip_stop",
				columns:  tripStopColumns,
				requires: []string{listScheduledTrips, listExistingStops},
				count:    50000,
				row: func(g *DataGenerator, ids IDLists) (TripStop, error) {
					fk, err := pick(g, ids, listScheduledTrips, listExistingStops)
					if err != nil {
						return TripStop{}, err
					}
					return TripStop{TripNo: fk[0], StopNo: fk[1]}, nil
				},
			}.step(),
			preload("staff", "staffNo", listExistingStaff),
			tableDef[VehicleCategory]{
				table:    "vehicle_categories",
				columns:  vehicleCategoryColumns,
				requires: []string{listExistingStaff},
				count:    50000,
				row:      newVehicleCategory,
			}.step(),
		},
	}
}

func newBillingInvoice(g *DataGenerator, ids IDLists) (BillingInvoice, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return BillingInvoice{}, err
	}
	i := BillingInvoice{
		InvoiceNo:       no,
		IssueDate:       g.DateThisDecade(),
		InvoicingPeriod: g.DateThisDecade(),
		AmountCharged:   g.Money(100, 10000),
		PaymentDueDate:  g.DateThisDecade(),
		PaymentStatus:   g.Choice("paid", "unpaid", "pending"),
	}
	if i.BookingNo, err = g.Pick(ids[listExistingBookings]); err != nil {
		return BillingInvoice{}, err
	}
	return i, nil
}

func newScheduledTrip(g *DataGenerator, ids IDLists) (ScheduledTrip, error) {
	no, err := g.UniqueInt(1, largeKeySpace)
	if err != nil {
		return ScheduledTrip{}, err
	}
	t := ScheduledTrip{
		TripNo:          no,
		Recurrence:      g.Choice("one-off", "daily", "weekly", "monthly", "annually"),
		NumberOfPersons: g.IntBetween(1, 100),
		IsActivated:     g.Bool(),
	}
	if t.RequestedBy, err = g.Pick(ids[listExistingCustomers]); err != nil {
		return ScheduledTrip{}, err
	}
	return t, nil
}

func newVehicleCategory(g *DataGenerator, ids IDLists) (VehicleCategory, error) {
	staffNo, err := g.Pick(ids[listExistingStaff])
	if err != nil {
		return VehicleCategory{}, err
	}
	return VehicleCategory{VehicleCategory: g.Word(), StaffNo: staffNo}, nil
}
