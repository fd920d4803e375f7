// Package demo runs the fixed ride-sharing demonstration: it builds the
// sample rides, drivers and riders, pushes them through the dispatch
// service and prints the results to a text sink.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
	"ridesharing/pkg/utils"
)

// SummaryDistance is the trip length used to compare tiers side by side.
const SummaryDistance = 10.0

type Demo struct {
	out *printer
	log *logrus.Logger
}

func New(out io.Writer, log *logrus.Logger) *Demo {
	return &Demo{
		out: &printer{w: out},
		log: log,
	}
}

// Run prints the three demonstration sections in order. It returns the
// first error encountered, including write failures on the sink.
func (d *Demo) Run(ctx context.Context) error {
	d.log.Info("starting ride-sharing demonstration")

	d.showRideTypes()
	d.showEntities()
	if err := d.showSystem(ctx); err != nil {
		return err
	}

	if d.out.err != nil {
		return fmt.Errorf("write demo output: %w", d.out.err)
	}
	d.log.Info("demonstration complete")
	return nil
}

// showRideTypes lists the sample rides through one slice of mixed tiers and
// compares the three tariffs at the same distance.
func (d *Demo) showRideTypes() {
	d.out.section("1. CREATING DIFFERENT RIDE TYPES (Inheritance & Polymorphism)",
		"-----------------------------------------------------------")

	d.out.line("Polymorphic fare calculation and ride details:")
	for _, ride := range SampleRides() {
		d.out.line("  " + ride.Description())
	}
	d.out.line("")

	d.out.section("POLYMORPHISM SUMMARY - Same Distance, Different Fares",
		"-----------------------------------------------------")

	base := entities.NewRide(999, "Point A", "Point B", SummaryDistance)
	standard := entities.NewStandardRide(998, "Point A", "Point B", SummaryDistance)
	premium := entities.NewPremiumRide(997, "Point A", "Point B", SummaryDistance)

	d.out.printf("For %.2f mile trips:\n", SummaryDistance)
	d.out.line("  Base Ride Fare: " + utils.FormatMoney(base.Fare()))
	d.out.line("  Standard Ride Fare: " + utils.FormatMoney(standard.Fare()))
	d.out.line("  Premium Ride Fare: " + utils.FormatMoney(premium.Fare()))
	d.out.line("")
}

// showEntities constructs the drivers and riders. Their state is private to
// the entities package; nothing is printed beyond the heading.
func (d *Demo) showEntities() {
	d.out.section("2. CREATED DRIVERS AND RIDERS (Encapsulation)",
		"----------------------------------------------")

	drivers := SampleDrivers()
	riders := SampleRiders()
	d.log.WithFields(logrus.Fields{
		"drivers": len(drivers),
		"riders":  len(riders),
	}).Debug("constructed sample drivers and riders")
}

func (d *Demo) showSystem(ctx context.Context) error {
	d.out.section("3. SYSTEM FUNCTIONALITY DEMONSTRATION",
		"------------------------------------")

	notifications := services.NewNotificationService(d.out, d.log)
	dispatch := services.NewDispatchService(
		memory.NewRideRepository(),
		memory.NewDriverRepository(),
		memory.NewRiderRepository(),
		notifications,
		d.log,
	)

	if err := SeedCatalog(ctx, dispatch); err != nil {
		return err
	}

	d.out.line("Assigning rides to drivers:")
	if err := AssignSampleRides(ctx, dispatch); err != nil {
		return err
	}
	d.out.line("")

	d.out.line("Riders requesting rides:")
	if err := RequestSampleRides(ctx, dispatch); err != nil {
		return err
	}
	d.out.line("")

	drivers, err := dispatch.ListDrivers(ctx)
	if err != nil {
		return err
	}
	riders, err := dispatch.ListRiders(ctx)
	if err != nil {
		return err
	}

	d.out.line("Final driver information:")
	for _, driver := range drivers {
		d.out.line("  " + driver.Info())
	}
	d.out.line("")

	d.out.line("Final rider information:")
	for _, rider := range riders {
		d.out.line("  " + rider.Info())
	}
	d.out.line("")

	d.out.line("Detailed driver assignments:")
	for _, driver := range drivers {
		d.out.lines(driver.ListAssignedRides().Lines())
	}
	d.out.line("")

	d.out.line("Detailed rider history:")
	for _, rider := range riders {
		d.out.lines(rider.ListRides().Lines())
	}
	d.out.line("")

	return nil
}

// printer remembers the first write error so the rendering code can stay
// linear; Run checks it once at the end.
//
// Go Learning Note — Sticky Errors:
// This is the same trick bufio.Writer uses: after the first failure every
// later write is a no-op, and the error is reported once. It avoids an
// `if err != nil` after every line of output.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p, format, args...)
}

func (p *printer) line(s string) {
	fmt.Fprintln(p, s)
}

func (p *printer) lines(ss []string) {
	for _, s := range ss {
		p.line(s)
	}
}

func (p *printer) section(title, rule string) {
	p.line(title)
	p.line(rule)
}
