package handler_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/dto"
	deliveryHttp "github.com/lokesh74503/Hospital-management-system/internal/delivery/http"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/handler"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/middleware"
	"github.com/lokesh74503/Hospital-management-system/internal/usecase"
	"github.com/lokesh74503/Hospital-management-system/pkg/validator"

	"github.com/sirupsen/logrus"
)

type fakeDoctorUsecase struct {
	createFn func(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	deleteFn func(ctx context.Context, id int64) error
	existsFn func(ctx context.Context, licenseNumber string) (bool, error)
}

func (f *fakeDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return nil, nil
}

func (f *fakeDoctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeDoctorUsecase) GetDoctorByUserID(ctx context.Context, userID int64) (*dto.DoctorResponse, error) {
	return nil, usecase.ErrDoctorNotFound
}

func (f *fakeDoctorUsecase) GetAllDoctors(ctx context.Context, page, size int, sortBy, sortDir string) ([]dto.DoctorResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	return nil, nil
}

func (f *fakeDoctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeDoctorUsecase) SearchDoctorsByName(ctx context.Context, name string) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{}, nil
}

func (f *fakeDoctorUsecase) GetDoctorsBySpecialization(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{}, nil
}

func (f *fakeDoctorUsecase) GetDoctorsByDepartment(ctx context.Context, departmentID int64) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{}, nil
}

func (f *fakeDoctorUsecase) GetDoctorByLicenseNumber(ctx context.Context, licenseNumber string) (*dto.DoctorResponse, error) {
	return nil, usecase.ErrDoctorNotFound
}

func (f *fakeDoctorUsecase) GetAvailableDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{}, nil
}

func (f *fakeDoctorUsecase) GetDoctorStatistics(ctx context.Context) (*dto.DoctorStatisticsResponse, error) {
	return &dto.DoctorStatisticsResponse{}, nil
}

func (f *fakeDoctorUsecase) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, licenseNumber)
	}
	return false, nil
}

type fakeScheduleUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	byDayFn  func(ctx context.Context, dayOfWeek string) (*dto.ScheduleListResponse, error)
}

func (f *fakeScheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return nil, nil
}

func (f *fakeScheduleUsecase) GetSchedule(ctx context.Context, id int64) (*dto.ScheduleResponse, error) {
	return nil, usecase.ErrScheduleNotFound
}

func (f *fakeScheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID int64) (*dto.ScheduleListResponse, error) {
	return &dto.ScheduleListResponse{}, nil
}

func (f *fakeScheduleUsecase) GetAvailableSchedulesByDay(ctx context.Context, dayOfWeek string) (*dto.ScheduleListResponse, error) {
	if f.byDayFn != nil {
		return f.byDayFn(ctx, dayOfWeek)
	}
	return &dto.ScheduleListResponse{}, nil
}

func (f *fakeScheduleUsecase) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	return nil, usecase.ErrScheduleNotFound
}

func (f *fakeScheduleUsecase) DeleteSchedule(ctx context.Context, id int64) error {
	return usecase.ErrScheduleNotFound
}

func newDoctorServer(t *testing.T, doctorFake *fakeDoctorUsecase, scheduleFake *fakeScheduleUsecase) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	customValidator := validator.NewValidator()
	router := deliveryHttp.NewDoctorRouter(
		handler.NewDoctorHandler(doctorFake, customValidator),
		handler.NewDoctorScheduleHandler(scheduleFake, customValidator),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func TestCreateDoctor(t *testing.T) {
	fake := &fakeDoctorUsecase{
		createFn: func(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
			return &dto.DoctorResponse{ID: 1, LicenseNumber: req.LicenseNumber}, nil
		},
	}
	server := newDoctorServer(t, fake, &fakeScheduleUsecase{})

	body := `{"user_id":7,"first_name":"Jane","last_name":"Smith","license_number":"LIC-2024-001"}`
	resp, err := http.Post(server.URL+"/api/v1/doctors", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected status 201, got %d", resp.StatusCode)
	}
}

func TestCreateDoctorDuplicateLicense(t *testing.T) {
	fake := &fakeDoctorUsecase{
		createFn: func(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrDoctorLicenseExists
		},
	}
	server := newDoctorServer(t, fake, &fakeScheduleUsecase{})

	body := `{"user_id":7,"first_name":"Jane","last_name":"Smith","license_number":"LIC-2024-001"}`
	resp, err := http.Post(server.URL+"/api/v1/doctors", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400 on conflict, got %d", resp.StatusCode)
	}
}

func TestCreateDoctorMissingLicense(t *testing.T) {
	server := newDoctorServer(t, &fakeDoctorUsecase{}, &fakeScheduleUsecase{})

	body := `{"user_id":7,"first_name":"Jane","last_name":"Smith"}`
	resp, err := http.Post(server.URL+"/api/v1/doctors", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestDeleteDoctor(t *testing.T) {
	server := newDoctorServer(t, &fakeDoctorUsecase{}, &fakeScheduleUsecase{})

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/doctors/1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", resp.StatusCode)
	}
}

func TestCreateScheduleInvalidTimeRange(t *testing.T) {
	fake := &fakeScheduleUsecase{
		createFn: func(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
			return nil, usecase.ErrInvalidTimeRange
		},
	}
	server := newDoctorServer(t, &fakeDoctorUsecase{}, fake)

	body := `{"doctor_id":1,"day_of_week":"MONDAY","start_time":"17:00","end_time":"09:00"}`
	resp, err := http.Post(server.URL+"/api/v1/schedules", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestCreateScheduleUnknownDoctor(t *testing.T) {
	fake := &fakeScheduleUsecase{
		createFn: func(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	}
	server := newDoctorServer(t, &fakeDoctorUsecase{}, fake)

	body := `{"doctor_id":99,"day_of_week":"MONDAY","start_time":"09:00","end_time":"17:00"}`
	resp, err := http.Post(server.URL+"/api/v1/schedules", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestGetAvailableSchedulesByDayInvalidDay(t *testing.T) {
	server := newDoctorServer(t, &fakeDoctorUsecase{}, &fakeScheduleUsecase{})

	resp, err := http.Get(server.URL + "/api/v1/schedules/day/FUNDAY")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetAvailableSchedulesByDay(t *testing.T) {
	var gotDay string
	fake := &fakeScheduleUsecase{
		byDayFn: func(ctx context.Context, dayOfWeek string) (*dto.ScheduleListResponse, error) {
			gotDay = dayOfWeek
			return &dto.ScheduleListResponse{
				Schedules: []dto.ScheduleResponse{{ID: 1, DayOfWeek: dayOfWeek}},
				Total:     1,
			}, nil
		},
	}
	server := newDoctorServer(t, &fakeDoctorUsecase{}, fake)

	resp, err := http.Get(server.URL + "/api/v1/schedules/day/MONDAY")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if gotDay != "MONDAY" {
		t.Errorf("expected day MONDAY, got %q", gotDay)
	}
}

func TestExistsByLicenseNumber(t *testing.T) {
	fake := &fakeDoctorUsecase{
		existsFn: func(ctx context.Context, licenseNumber string) (bool, error) {
			return licenseNumber == "LIC-2024-001", nil
		},
	}
	server := newDoctorServer(t, fake, &fakeScheduleUsecase{})

	resp, err := http.Get(server.URL + "/api/v1/doctors/exists/license-number/LIC-2024-001")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	envelope := decodeResponse(t, resp.Body)
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", envelope.Data)
	}
	if exists, _ := data["exists"].(bool); !exists {
		t.Error("expected exists to be true")
	}
}
