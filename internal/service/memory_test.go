package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
)

type memState struct {
	drivers  map[model.ID]model.Driver
	licenses map[model.ID]model.License
	tests    map[model.ID]model.PsychometricTest
}

func (s memState) clone() memState {
	c := memState{
		drivers:  make(map[model.ID]model.Driver, len(s.drivers)),
		licenses: make(map[model.ID]model.License, len(s.licenses)),
		tests:    make(map[model.ID]model.PsychometricTest, len(s.tests)),
	}
	for k, v := range s.drivers {
		c.drivers[k] = v
	}
	for k, v := range s.licenses {
		c.licenses[k] = v
	}
	for k, v := range s.tests {
		c.tests[k] = v
	}
	return c
}

// memRepository is a Repository kept in maps. Atomic snapshots the state
// and restores it when fn fails. failures makes named operations fail.
type memRepository struct {
	state    memState
	nextID   model.ID
	failures map[string]error
	atomics  int
}

func newMemRepository() *memRepository {
	return &memRepository{
		state: memState{
			drivers:  map[model.ID]model.Driver{},
			licenses: map[model.ID]model.License{},
			tests:    map[model.ID]model.PsychometricTest{},
		},
		failures: map[string]error{},
	}
}

func (r *memRepository) Drivers() DriverStore   { return memDrivers{r} }
func (r *memRepository) Licenses() LicenseStore { return memLicenses{r} }
func (r *memRepository) Tests() TestStore       { return memTests{r} }

func (r *memRepository) Atomic(_ context.Context, fn func(repo Repository) error) error {
	r.atomics++
	snapshot := r.state.clone()
	if err := fn(r); err != nil {
		r.state = snapshot
		return err
	}
	return nil
}

func (r *memRepository) fail(op string) error {
	return r.failures[op]
}

func (r *memRepository) id() model.ID {
	r.nextID++
	return r.nextID
}

func (r *memRepository) putDriver(d model.Driver) model.Driver {
	d.ID = r.id()
	r.state.drivers[d.ID] = d
	return d
}

func (r *memRepository) putTest(t model.PsychometricTest) model.PsychometricTest {
	t.ID = r.id()
	r.state.tests[t.ID] = t
	return t
}

func (r *memRepository) putLicense(l model.License) model.License {
	l.ID = r.id()
	r.state.licenses[l.ID] = l
	return l
}

func page[T any](items []T, opts database.FindOptions) []T {
	if opts.Offset >= uint64(len(items)) {
		return []T{}
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < uint64(len(items)) {
		items = items[:opts.Limit]
	}
	return items
}

type memDrivers struct{ r *memRepository }

func (m memDrivers) Find(_ context.Context, filter database.FindDriverFilter, opts database.FindOptions) ([]model.Driver, error) {
	if err := m.r.fail("drivers.Find"); err != nil {
		return nil, err
	}
	out := []model.Driver{}
	for _, d := range m.r.state.drivers {
		if filter.Name != nil && *filter.Name != "" {
			q := strings.ToUpper(*filter.Name)
			if !strings.Contains(d.FirstName, q) && !strings.Contains(d.LastName, q) {
				continue
			}
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].ID < out[j].ID
	})
	return page(out, opts), nil
}

func (m memDrivers) Get(_ context.Context, id model.ID) (model.Driver, error) {
	if err := m.r.fail("drivers.Get"); err != nil {
		return model.Driver{}, err
	}
	d, ok := m.r.state.drivers[id]
	if !ok {
		return model.Driver{}, model.NewError("driver", model.ErrNotFound)
	}
	return d, nil
}

func (m memDrivers) GetForUpdate(ctx context.Context, id model.ID) (model.Driver, error) {
	return m.Get(ctx, id)
}

func (m memDrivers) GetByNationalID(_ context.Context, nationalID string) (model.Driver, error) {
	if err := m.r.fail("drivers.GetByNationalID"); err != nil {
		return model.Driver{}, err
	}
	for _, d := range m.r.state.drivers {
		if d.NationalID == nationalID {
			return d, nil
		}
	}
	return model.Driver{}, model.NewError("driver", model.ErrNotFound)
}

func (m memDrivers) Insert(_ context.Context, dto database.InsertDriverDTO) (model.ID, error) {
	if err := m.r.fail("drivers.Insert"); err != nil {
		return 0, err
	}
	for _, d := range m.r.state.drivers {
		if d.NationalID == dto.NationalID {
			return 0, model.NewError("driver", model.ErrExists)
		}
	}
	d := m.r.putDriver(model.Driver{
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
		NationalID:         dto.NationalID,
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		BirthDate:          dto.BirthDate,
		Address:            dto.Contact.Address,
		Phone:              dto.Contact.Phone,
		Email:              dto.Contact.Email,
		BloodType:          dto.Contact.BloodType,
		DocumentsValidated: dto.DocumentsValidated,
		Notes:              dto.Notes,
	})
	return d.ID, nil
}

func (m memDrivers) Update(_ context.Context, id model.ID, dto database.UpdateDriverDTO) error {
	if err := m.r.fail("drivers.Update"); err != nil {
		return err
	}
	d, ok := m.r.state.drivers[id]
	if !ok {
		return model.NewError("driver", model.ErrNotFound)
	}
	if dto.NationalID != nil {
		d.NationalID = *dto.NationalID
	}
	if dto.FirstName != nil {
		d.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		d.LastName = *dto.LastName
	}
	if dto.BirthDate != nil {
		d.BirthDate = *dto.BirthDate
	}
	if dto.Contact != nil {
		d.Address, d.Phone, d.Email, d.BloodType = dto.Contact.Address, dto.Contact.Phone, dto.Contact.Email, dto.Contact.BloodType
	}
	if dto.DocumentsValidated != nil {
		d.DocumentsValidated = *dto.DocumentsValidated
	}
	if dto.Notes != nil {
		d.Notes = *dto.Notes
	}
	d.UpdatedAt = time.Now()
	m.r.state.drivers[id] = d
	return nil
}

func (m memDrivers) Delete(_ context.Context, id model.ID) error {
	if err := m.r.fail("drivers.Delete"); err != nil {
		return err
	}
	if _, ok := m.r.state.drivers[id]; !ok {
		return model.NewError("driver", model.ErrNotFound)
	}
	delete(m.r.state.drivers, id)
	return nil
}

type memLicenses struct{ r *memRepository }

func sortLicenses(ls []model.License) {
	sort.Slice(ls, func(i, j int) bool {
		if !ls[i].IssuedOn.Equal(ls[j].IssuedOn) {
			return ls[i].IssuedOn.After(ls[j].IssuedOn)
		}
		return ls[i].ID > ls[j].ID
	})
}

func (m memLicenses) Find(_ context.Context, filter database.FindLicenseFilter, opts database.FindOptions) ([]model.License, error) {
	if err := m.r.fail("licenses.Find"); err != nil {
		return nil, err
	}
	out := []model.License{}
	for _, l := range m.r.state.licenses {
		if filter.ValidOn != nil && !(l.Active && !l.ExpiresOn.Before(model.Date(*filter.ValidOn))) {
			continue
		}
		out = append(out, l)
	}
	sortLicenses(out)
	return page(out, opts), nil
}

func (m memLicenses) FindByDriver(_ context.Context, driverID model.ID) ([]model.License, error) {
	if err := m.r.fail("licenses.FindByDriver"); err != nil {
		return nil, err
	}
	out := []model.License{}
	for _, l := range m.r.state.licenses {
		if l.DriverID == driverID {
			out = append(out, l)
		}
	}
	sortLicenses(out)
	return out, nil
}

func (m memLicenses) Get(_ context.Context, id model.ID) (model.License, error) {
	if err := m.r.fail("licenses.Get"); err != nil {
		return model.License{}, err
	}
	l, ok := m.r.state.licenses[id]
	if !ok {
		return model.License{}, model.NewError("license", model.ErrNotFound)
	}
	return l, nil
}

func (m memLicenses) GetByNumber(_ context.Context, number string) (model.License, error) {
	out := []model.License{}
	for _, l := range m.r.state.licenses {
		if l.Number == number {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return model.License{}, model.NewError("license", model.ErrNotFound)
	}
	sortLicenses(out)
	return out[0], nil
}

func (m memLicenses) Insert(_ context.Context, dto database.InsertLicenseDTO) (model.ID, error) {
	if err := m.r.fail("licenses.Insert"); err != nil {
		return 0, err
	}
	l := m.r.putLicense(model.License{
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
		Number:             dto.Number,
		DriverID:           dto.DriverID,
		Type:               dto.Type,
		IssuedOn:           dto.IssuedOn,
		ExpiresOn:          dto.ExpiresOn,
		Active:             dto.Active,
		PsychometricTestID: dto.PsychometricTestID,
		Notes:              dto.Notes,
	})
	return l.ID, nil
}

func (m memLicenses) Update(_ context.Context, id model.ID, dto database.UpdateLicenseDTO) error {
	l, ok := m.r.state.licenses[id]
	if !ok {
		return model.NewError("license", model.ErrNotFound)
	}
	if dto.Active != nil {
		l.Active = *dto.Active
	}
	if dto.Notes != nil {
		l.Notes = *dto.Notes
	}
	m.r.state.licenses[id] = l
	return nil
}

func (m memLicenses) Delete(_ context.Context, id model.ID) error {
	if _, ok := m.r.state.licenses[id]; !ok {
		return model.NewError("license", model.ErrNotFound)
	}
	delete(m.r.state.licenses, id)
	return nil
}

func (m memLicenses) deleteWhere(op string, match func(model.License) bool) (int64, error) {
	if err := m.r.fail(op); err != nil {
		return 0, err
	}
	var n int64
	for id, l := range m.r.state.licenses {
		if match(l) {
			delete(m.r.state.licenses, id)
			n++
		}
	}
	return n, nil
}

func (m memLicenses) DeleteByDriver(_ context.Context, driverID model.ID) (int64, error) {
	return m.deleteWhere("licenses.DeleteByDriver", func(l model.License) bool { return l.DriverID == driverID })
}

func (m memLicenses) DeleteByTest(_ context.Context, testID model.ID) (int64, error) {
	return m.deleteWhere("licenses.DeleteByTest", func(l model.License) bool {
		return l.PsychometricTestID != nil && *l.PsychometricTestID == testID
	})
}

func (m memLicenses) DeleteByTestsOfDriver(_ context.Context, driverID model.ID) (int64, error) {
	return m.deleteWhere("licenses.DeleteByTestsOfDriver", func(l model.License) bool {
		if l.PsychometricTestID == nil {
			return false
		}
		t, ok := m.r.state.tests[*l.PsychometricTestID]
		return ok && t.DriverID == driverID
	})
}

type memTests struct{ r *memRepository }

func (m memTests) FindByDriver(_ context.Context, driverID model.ID) ([]model.PsychometricTest, error) {
	if err := m.r.fail("tests.FindByDriver"); err != nil {
		return nil, err
	}
	out := []model.PsychometricTest{}
	for _, t := range m.r.state.tests {
		if t.DriverID == driverID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TakenAt.Equal(out[j].TakenAt) {
			return out[i].TakenAt.After(out[j].TakenAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m memTests) Get(_ context.Context, id model.ID) (model.PsychometricTest, error) {
	if err := m.r.fail("tests.Get"); err != nil {
		return model.PsychometricTest{}, err
	}
	t, ok := m.r.state.tests[id]
	if !ok {
		return model.PsychometricTest{}, model.NewError("psychometric test", model.ErrNotFound)
	}
	return t, nil
}

func (m memTests) Insert(_ context.Context, dto database.InsertPsychometricTestDTO) (model.ID, error) {
	if err := m.r.fail("tests.Insert"); err != nil {
		return 0, err
	}
	t := m.r.putTest(model.PsychometricTest{
		CreatedAt: time.Now(),
		DriverID:  dto.DriverID,
		Scores:    dto.Scores,
		TakenAt:   dto.TakenAt,
		Notes:     dto.Notes,
	})
	return t.ID, nil
}

func (m memTests) Delete(_ context.Context, id model.ID) error {
	if err := m.r.fail("tests.Delete"); err != nil {
		return err
	}
	if _, ok := m.r.state.tests[id]; !ok {
		return model.NewError("psychometric test", model.ErrNotFound)
	}
	delete(m.r.state.tests, id)
	return nil
}

func (m memTests) DeleteByDriver(_ context.Context, driverID model.ID) (int64, error) {
	if err := m.r.fail("tests.DeleteByDriver"); err != nil {
		return 0, err
	}
	var n int64
	for id, t := range m.r.state.tests {
		if t.DriverID == driverID {
			delete(m.r.state.tests, id)
			n++
		}
	}
	return n, nil
}
