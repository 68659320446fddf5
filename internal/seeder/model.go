package seeder

import (
	"time"

	"github.com/shopspring/decimal"
)

// money binds an amount as a fixed two decimal string so DECIMAL columns
// receive exactly what was generated.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

var customerColumns = []string{"customerNo", "houseNo", "street", "city", "postcode", "country", "phoneNo", "email", "firstName", "lastName", "dateBirth", "gender"}

type Customer struct {
	CustomerNo int
	HouseNo    string
	Street     string
	City       string
	Postcode   string
	Country    string
	PhoneNo    string
	Email      string
	FirstName  string
	LastName   string
	DateBirth  time.Time
	Gender     string
}

func (c Customer) values() []any {
	return []any{c.CustomerNo, c.HouseNo, c.Street, c.City, c.Postcode, c.Country, c.PhoneNo, c.Email, c.FirstName, c.LastName, c.DateBirth, c.Gender}
}

var staffColumns = []string{"staffNo", "firstName", "lastName", "houseNo", "street", "city", "postcode", "privatePhoneNo", "email", "dateBirth", "gender", "position", "startDateWork", "endDateWork", "salary", "employmentStatus"}

type Staff struct {
	StaffNo          int
	FirstName        string
	LastName         string
	HouseNo          string
	Street           string
	City             string
	Postcode         string
	PrivatePhoneNo   string
	Email            string
	DateBirth        time.Time
	Gender           string
	Position         string
	StartDateWork    time.Time
	EndDateWork      time.Time
	Salary           float64
	EmploymentStatus string
}

func (s Staff) values() []any {
	return []any{s.StaffNo, s.FirstName, s.LastName, s.HouseNo, s.Street, s.City, s.Postcode, s.PrivatePhoneNo, s.Email, s.DateBirth, s.Gender, s.Position, s.StartDateWork, s.EndDateWork, money(s.Salary), s.EmploymentStatus}
}

var driverColumns = []string{"staffNo", "licenceNo"}

type Driver struct {
	StaffNo   int
	LicenceNo int
}

func (d Driver) values() []any { return []any{d.StaffNo, d.LicenceNo} }

var depotColumns = []string{"depotNo", "houseNo", "street", "city", "postcode", "phoneNo", "parkingAreaSize", "overseenBy"}

type Depot struct {
	DepotNo         int
	HouseNo         string
	Street          string
	City            string
	Postcode        string
	PhoneNo         string
	ParkingAreaSize float64
	OverseenBy      int
}

func (d Depot) values() []any {
	return []any{d.DepotNo, d.HouseNo, d.Street, d.City, d.Postcode, d.PhoneNo, money(d.ParkingAreaSize), d.OverseenBy}
}

var vehicleColumns = []string{"vehicleNo", "registrationNo", "brand", "model", "category", "yearManufacture", "passengerSeatsCapacity", "bootSizeInLitres", "mileage", "nextMaintenanceDate", "stationedAt"}

type Vehicle struct {
	VehicleNo              int
	RegistrationNo         int
	Brand                  string
	Model                  string
	Category               string
	YearManufacture        int
	PassengerSeatsCapacity int
	BootSizeInLitres       float64
	Mileage                float64
	NextMaintenanceDate    time.Time
	StationedAt            int
}

func (v Vehicle) values() []any {
	return []any{v.VehicleNo, v.RegistrationNo, v.Brand, v.Model, v.Category, v.YearManufacture, v.PassengerSeatsCapacity, money(v.BootSizeInLitres), money(v.Mileage), v.NextMaintenanceDate, v.StationedAt}
}

var routeColumns = []string{"routeNo", "startDepot", "endDepot", "plannedStartDate", "plannedStartTime", "plannedEndDate", "plannedEndTime", "actualStartDate", "actualStartTime", "actualEndDate", "actualEndTime", "currentStatus"}

type Route struct {
	RouteNo          int
	StartDepot       int
	EndDepot         int
	PlannedStartDate time.Time
	PlannedStartTime string
	PlannedEndDate   time.Time
	PlannedEndTime   string
	ActualStartDate  time.Time
	ActualStartTime  string
	ActualEndDate    time.Time
	ActualEndTime    string
	CurrentStatus    string
}

func (r Route) values() []any {
	return []any{r.RouteNo, r.StartDepot, r.EndDepot, r.PlannedStartDate, r.PlannedStartTime, r.PlannedEndDate, r.PlannedEndTime, r.ActualStartDate, r.ActualStartTime, r.ActualEndDate, r.ActualEndTime, r.CurrentStatus}
}

var stopColumns = []string{"stopNo", "runningNo", "locationData", "plannedStopDate", "plannedStopTime", "duration", "stopType", "runningNoWithinRoute", "actualStopDate", "actualStopTime", "routeNo"}

type Stop struct {
	StopNo               int
	RunningNo            int
	LocationData         string
	PlannedStopDate      time.Time
	PlannedStopTime      string
	Duration             int
	StopType             string
	RunningNoWithinRoute int
	ActualStopDate       time.Time
	ActualStopTime       string
	RouteNo              int
}

func (s Stop) values() []any {
	return []any{s.StopNo, s.RunningNo, s.LocationData, s.PlannedStopDate, s.PlannedStopTime, s.Duration, s.StopType, s.RunningNoWithinRoute, s.ActualStopDate, s.ActualStopTime, s.RouteNo}
}

var bookingColumns = []string{"bookingNo", "bookingDate", "bookedBy"}

type Booking struct {
	BookingNo   int
	BookingDate time.Time
	BookedBy    int
}

func (b Booking) values() []any { return []any{b.BookingNo, b.BookingDate, b.BookedBy} }

var tripColumns = []string{"tripNo", "recurrence", "numberOfPersons", "isActivated", "requestedBy"}

type Trip struct {
	TripNo          int
	Recurrence      string
	NumberOfPersons int
	IsActivated     string
	RequestedBy     int
}

func (t Trip) values() []any {
	return []any{t.TripNo, t.Recurrence, t.NumberOfPersons, t.IsActivated, t.RequestedBy}
}

var invoiceColumns = []string{"invoiceNo", "invoiceDate", "amount", "relatedBooking"}

type Invoice struct {
	InvoiceNo      int
	InvoiceDate    time.Time
	Amount         float64
	RelatedBooking int
}

func (i Invoice) values() []any {
	return []any{i.InvoiceNo, i.InvoiceDate, money(i.Amount), i.RelatedBooking}
}

var tripStopColumns = []string{"tripNo", "stopNo"}

type TripStop struct {
	TripNo int
	StopNo int
}

func (t TripStop) values() []any { return []any{t.TripNo, t.StopNo} }

var driverVehicleRouteColumns = []string{"driver", "vehicle", "route"}

type DriverVehicleRoute struct {
	Driver  int
	Vehicle int
	Route   int
}

func (d DriverVehicleRoute) values() []any { return []any{d.Driver, d.Vehicle, d.Route} }

// Rows of the billing schema variant filled by the fill-missing plan.

var billingInvoiceColumns = []string{"invoiceNo", "issueDate", "invoicingPeriod", "amountCharged", "paymentDueDate", "paymentStatus", "bookingNo"}

type BillingInvoice struct {
	InvoiceNo       int
	IssueDate       time.Time
	InvoicingPeriod time.Time
	AmountCharged   float64
	PaymentDueDate  time.Time
	PaymentStatus   string
	BookingNo       int
}

func (i BillingInvoice) values() []any {
	return []any{i.InvoiceNo, i.IssueDate, i.InvoicingPeriod, money(i.AmountCharged), i.PaymentDueDate, i.PaymentStatus, i.BookingNo}
}

type ScheduledTrip struct {
	TripNo          int
	Recurrence      string
	NumberOfPersons int
	IsActivated     bool
	RequestedBy     int
}

func (t ScheduledTrip) values() []any {
	return []any{t.TripNo, t.Recurrence, t.NumberOfPersons, t.IsActivated, t.RequestedBy}
}

var vehicleCategoryColumns = []string{"vehicleCategory", "staffNo"}

type VehicleCategory struct {
	VehicleCategory string
	StaffNo         int
}

func (v VehicleCategory) values() []any { return []any{v.VehicleCategory, v.StaffNo} }
