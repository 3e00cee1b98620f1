package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/lokesh74503/Hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type fakePatientRepo struct {
	patients []entity.Patient

	gotLimit, gotOffset int
	gotSortBy           string
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == id {
			return &f.patients[i], nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*entity.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int, sortBy, sortDir string) ([]entity.Patient, int64, error) {
	f.gotLimit, f.gotOffset, f.gotSortBy = limit, offset, sortBy
	return f.patients, int64(len(f.patients)), nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	return 0, nil
}

func (f *fakePatientRepo) SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) FindByBloodGroup(ctx context.Context, db *gorm.DB, bloodGroup string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByGender(ctx context.Context, db *gorm.DB, gender string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByInsuranceProvider(ctx context.Context, db *gorm.DB, provider string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (*entity.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) FindByAllergiesContaining(ctx context.Context, db *gorm.DB, allergy string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByMedicalHistoryContaining(ctx context.Context, db *gorm.DB, condition string) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByCreatedAtBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByBirthYear(ctx context.Context, db *gorm.DB, year int) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindByDateOfBirthBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindAllUnpaged(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(f.patients)), nil
}

func (f *fakePatientRepo) CountByGender(ctx context.Context, db *gorm.DB, gender string) (int64, error) {
	var count int64
	for i := range f.patients {
		if f.patients[i].Gender != nil && *f.patients[i].Gender == gender {
			count++
		}
	}
	return count, nil
}

func (f *fakePatientRepo) ExistsByUserID(ctx context.Context, db *gorm.DB, userID int64) (bool, error) {
	return false, nil
}

func (f *fakePatientRepo) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	return false, nil
}

func (f *fakePatientRepo) ExistsByInsuranceNumber(ctx context.Context, db *gorm.DB, insuranceNumber string) (bool, error) {
	return false, nil
}

func strPtr(s string) *string { return &s }

func TestGetAllPatientsNormalizesPaging(t *testing.T) {
	repo := &fakePatientRepo{}
	u := NewPatientUsecase(nil, testLogger(), repo, noopPublisher{})

	if _, _, err := u.GetAllPatients(context.Background(), -3, 0, "id", "asc"); err != nil {
		t.Fatal(err)
	}
	if repo.gotLimit != 10 || repo.gotOffset != 0 {
		t.Errorf("expected limit 10 offset 0, got %d and %d", repo.gotLimit, repo.gotOffset)
	}

	if _, _, err := u.GetAllPatients(context.Background(), 2, 5, "lastName", "desc"); err != nil {
		t.Fatal(err)
	}
	if repo.gotLimit != 5 || repo.gotOffset != 10 {
		t.Errorf("expected limit 5 offset 10, got %d and %d", repo.gotLimit, repo.gotOffset)
	}
	if repo.gotSortBy != "lastName" {
		t.Errorf("expected sortBy lastName, got %q", repo.gotSortBy)
	}
}

func TestGetPatientStatistics(t *testing.T) {
	repo := &fakePatientRepo{
		patients: []entity.Patient{
			{ID: 1, Gender: strPtr(entity.GenderMale), InsuranceProvider: "Acme Health", Allergies: "penicillin"},
			{ID: 2, Gender: strPtr(entity.GenderFemale), InsuranceProvider: "   "},
			{ID: 3, Gender: strPtr(entity.GenderFemale), Allergies: ""},
			{ID: 4, Gender: strPtr(entity.GenderOther)},
		},
	}
	u := NewPatientUsecase(nil, testLogger(), repo, noopPublisher{})

	stats, err := u.GetPatientStatistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalPatients != 4 {
		t.Errorf("expected 4 total patients, got %d", stats.TotalPatients)
	}
	if stats.MalePatients != 1 || stats.FemalePatients != 2 || stats.OtherGenderPatients != 1 {
		t.Errorf("unexpected gender counts: %d male, %d female, %d other",
			stats.MalePatients, stats.FemalePatients, stats.OtherGenderPatients)
	}
	// Whitespace-only provider does not count as insured
	if stats.PatientsWithInsurance != 1 {
		t.Errorf("expected 1 patient with insurance, got %d", stats.PatientsWithInsurance)
	}
	if stats.PatientsWithAllergies != 1 {
		t.Errorf("expected 1 patient with allergies, got %d", stats.PatientsWithAllergies)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	u := NewPatientUsecase(nil, testLogger(), &fakePatientRepo{}, noopPublisher{})

	if _, err := u.GetPatient(context.Background(), 99); err != ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}
