package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/service"
)

func jobsFixture(ownerID uuid.UUID, jobsRepo *mockJobsRepository, applicationsRepo *mockApplicationsRepository) *JobsHandler {
	companies := ownedCompaniesRepo(ownerID)
	jobs := service.NewJobsService(companies, jobsRepo)
	pages := service.NewPagesService(companies, &mockSectionsRepository{}, jobsRepo)
	applications := service.NewApplicationsService(pages, companies, jobsRepo, applicationsRepo, "US")
	return NewJobsHandler(jobs, applications, bypassedCache())
}

func TestJobsHandler_Bulk(t *testing.T) {
	ownerID := uuid.New()
	companyID := uuid.New()
	jobIDs := []uuid.UUID{uuid.New(), uuid.New()}

	tests := map[string]struct {
		body           string
		expectCode     int
		expectAffected int64
	}{
		"empty id set": {
			body:       `{"job_ids":[],"action":"publish"}`,
			expectCode: http.StatusBadRequest,
		},
		"malformed id": {
			body:       `{"job_ids":["nope"],"action":"publish"}`,
			expectCode: http.StatusBadRequest,
		},
		"unknown action": {
			body:       `{"job_ids":["` + jobIDs[0].String() + `"],"action":"archive"}`,
			expectCode: http.StatusBadRequest,
		},
		"publish is case insensitive": {
			body:           `{"job_ids":["` + jobIDs[0].String() + `","` + jobIDs[1].String() + `"],"action":"PUBLISH"}`,
			expectCode:     http.StatusOK,
			expectAffected: 2,
		},
		"delete": {
			body:           `{"job_ids":["` + jobIDs[0].String() + `"],"action":"delete"}`,
			expectCode:     http.StatusOK,
			expectAffected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			jobsRepo := &mockJobsRepository{
				bulkSetPublished: func(ctx context.Context, gotCompany uuid.UUID, ids []uuid.UUID, published bool) (int64, error) {
					return int64(len(ids)), nil
				},
				bulkDelete: func(ctx context.Context, gotCompany uuid.UUID, ids []uuid.UUID) (int64, error) {
					return int64(len(ids)), nil
				},
			}
			handler := jobsFixture(ownerID, jobsRepo, &mockApplicationsRepository{})

			e := echo.New()
			c, rec := jsonContext(t, e, http.MethodPost, "/", tt.body, &ownerID)
			c.SetParamNames("id")
			c.SetParamValues(companyID.String())

			if err := handler.Bulk(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, rec.Code, rec.Body.String())
			}
			if tt.expectCode != http.StatusOK {
				return
			}

			var payload struct {
				Data dto.BulkJobActionResponse `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if payload.Data.Affected != tt.expectAffected {
				t.Fatalf("expected %d affected, got %d", tt.expectAffected, payload.Data.Affected)
			}
		})
	}
}

func TestJobsHandler_Create_DraftByDefault(t *testing.T) {
	ownerID := uuid.New()
	jobsRepo := &mockJobsRepository{
		create: func(ctx context.Context, job *entity.Job) (*entity.Job, error) {
			if job.Published {
				t.Fatalf("expected draft job")
			}
			created := *job
			created.ID = uuid.New()
			return &created, nil
		},
	}
	handler := jobsFixture(ownerID, jobsRepo, &mockApplicationsRepository{})

	e := echo.New()
	c, rec := jsonContext(t, e, http.MethodPost, "/", `{"title":"Senior Go Engineer"}`, &ownerID)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	if err := handler.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestJobsHandler_Applications_EmptyList(t *testing.T) {
	ownerID := uuid.New()
	jobID := uuid.New()

	jobsRepo := &mockJobsRepository{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
			return &entity.Job{ID: id, CompanyID: uuid.New()}, nil
		},
	}
	applicationsRepo := &mockApplicationsRepository{
		listByJob: func(ctx context.Context, gotJob uuid.UUID) ([]entity.Application, error) { return nil, nil },
	}
	handler := jobsFixture(ownerID, jobsRepo, applicationsRepo)

	e := echo.New()
	c, rec := jsonContext(t, e, http.MethodGet, "/", "", &ownerID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	if err := handler.Applications(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data []entity.Application `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil {
		t.Fatalf("expected empty array, got null")
	}
}
