package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
)

var specialities = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var slotTimes = []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

// Doctors registers count fake doctors, each offering slotsPerDoctor distinct
// slots on the days following start.
func Doctors(ctx context.Context, svc *appointment.Service, faker *gofakeit.Faker, count, slotsPerDoctor int, start time.Time) ([]*appointment.Doctor, error) {
	doctors := make([]*appointment.Doctor, 0, count)
	for i := 0; i < count; i++ {
		d, err := svc.RegisterDoctor(ctx, appointment.RegisterDoctorCommand{
			Name:       faker.Name(),
			Age:        strconv.Itoa(faker.Number(28, 70)),
			Gender:     faker.Gender(),
			Speciality: faker.RandomString(specialities),
			Slots:      Slots(faker, slotsPerDoctor, start),
		})
		if err != nil {
			return nil, fmt.Errorf("seed doctor %d: %w", i+1, err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func Patients(ctx context.Context, svc *appointment.Service, faker *gofakeit.Faker, count int) ([]*appointment.Patient, error) {
	patients := make([]*appointment.Patient, 0, count)
	for i := 0; i < count; i++ {
		p, err := svc.RegisterPatient(ctx, appointment.RegisterPatientCommand{
			Name:   faker.Name(),
			Age:    strconv.Itoa(faker.Number(0, 99)),
			Gender: faker.Gender(),
		})
		if err != nil {
			return nil, fmt.Errorf("seed patient %d: %w", i+1, err)
		}
		patients = append(patients, p)
	}
	return patients, nil
}

// Slots returns n distinct slots spread over the days after start. Each day
// offers a random subset of the standard clinic hours.
func Slots(faker *gofakeit.Faker, n int, start time.Time) []appointment.Slot {
	out := make([]appointment.Slot, 0, n)
	for day := 1; len(out) < n; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		for _, t := range slotTimes {
			if len(out) == n {
				break
			}
			if faker.Bool() {
				continue
			}
			out = append(out, appointment.Slot{Date: date, Time: t})
		}
	}
	return out
}

// NewFaker returns a faker seeded with seed, or with the clock when seed is 0.
func NewFaker(seed uint64) *gofakeit.Faker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return gofakeit.New(seed)
}
