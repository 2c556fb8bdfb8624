package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

type mockCompaniesRepository struct {
	createWithPage func(ctx context.Context, name, slug string, ownerID uuid.UUID) (*entity.Company, *entity.CareerPage, error)
	listByOwner    func(ctx context.Context, ownerID uuid.UUID) ([]entity.Company, error)
	findByID       func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Company, error)
	findBySlug     func(ctx context.Context, slug string) (*entity.Company, error)
	findPage       func(ctx context.Context, companyID uuid.UUID) (*entity.CareerPage, error)
	findPageByID   func(ctx context.Context, pageID uuid.UUID) (*entity.CareerPage, error)
	updatePage     func(ctx context.Context, companyID uuid.UUID, theme *string, published *bool) (*entity.CareerPage, error)
	listPublished  func(ctx context.Context) ([]repository.PublishedCompany, error)
}

func (m *mockCompaniesRepository) CreateWithPage(ctx context.Context, name, slug string, ownerID uuid.UUID) (*entity.Company, *entity.CareerPage, error) {
	if m.createWithPage != nil {
		return m.createWithPage(ctx, name, slug, ownerID)
	}
	return nil, nil, errors.New("CreateWithPage not implemented")
}

func (m *mockCompaniesRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Company, error) {
	if m.listByOwner != nil {
		return m.listByOwner(ctx, ownerID)
	}
	return nil, errors.New("ListByOwner not implemented")
}

func (m *mockCompaniesRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Company, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id, ownerID)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockCompaniesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	if m.findBySlug != nil {
		return m.findBySlug(ctx, slug)
	}
	return nil, errors.New("FindBySlug not implemented")
}

func (m *mockCompaniesRepository) FindPage(ctx context.Context, companyID uuid.UUID) (*entity.CareerPage, error) {
	if m.findPage != nil {
		return m.findPage(ctx, companyID)
	}
	return nil, errors.New("FindPage not implemented")
}

func (m *mockCompaniesRepository) FindPageByID(ctx context.Context, pageID uuid.UUID) (*entity.CareerPage, error) {
	if m.findPageByID != nil {
		return m.findPageByID(ctx, pageID)
	}
	return nil, errors.New("FindPageByID not implemented")
}

func (m *mockCompaniesRepository) UpdatePage(ctx context.Context, companyID uuid.UUID, theme *string, published *bool) (*entity.CareerPage, error) {
	if m.updatePage != nil {
		return m.updatePage(ctx, companyID, theme, published)
	}
	return nil, errors.New("UpdatePage not implemented")
}

func (m *mockCompaniesRepository) ListPublished(ctx context.Context) ([]repository.PublishedCompany, error) {
	if m.listPublished != nil {
		return m.listPublished(ctx)
	}
	return nil, errors.New("ListPublished not implemented")
}

type mockSectionsRepository struct {
	appendSection func(ctx context.Context, pageID uuid.UUID, sectionType entity.SectionType, title, content string) (*entity.PageSection, error)
	find          func(ctx context.Context, id uuid.UUID) (*entity.PageSection, error)
	update        func(ctx context.Context, id uuid.UUID, title, content *string, order *int, visible *bool) (*entity.PageSection, error)
	delete        func(ctx context.Context, id uuid.UUID) error
	list          func(ctx context.Context, pageID uuid.UUID) ([]entity.PageSection, error)
	reorder       func(ctx context.Context, pageID uuid.UUID, sectionIDs []uuid.UUID) error
}

func (m *mockSectionsRepository) Append(ctx context.Context, pageID uuid.UUID, sectionType entity.SectionType, title, content string) (*entity.PageSection, error) {
	if m.appendSection != nil {
		return m.appendSection(ctx, pageID, sectionType, title, content)
	}
	return nil, errors.New("Append not implemented")
}

func (m *mockSectionsRepository) Find(ctx context.Context, id uuid.UUID) (*entity.PageSection, error) {
	if m.find != nil {
		return m.find(ctx, id)
	}
	return nil, errors.New("Find not implemented")
}

func (m *mockSectionsRepository) Update(ctx context.Context, id uuid.UUID, title, content *string, order *int, visible *bool) (*entity.PageSection, error) {
	if m.update != nil {
		return m.update(ctx, id, title, content, order, visible)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockSectionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

func (m *mockSectionsRepository) List(ctx context.Context, pageID uuid.UUID) ([]entity.PageSection, error) {
	if m.list != nil {
		return m.list(ctx, pageID)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockSectionsRepository) Reorder(ctx context.Context, pageID uuid.UUID, sectionIDs []uuid.UUID) error {
	if m.reorder != nil {
		return m.reorder(ctx, pageID, sectionIDs)
	}
	return errors.New("Reorder not implemented")
}

type mockJobsRepository struct {
	create           func(ctx context.Context, job *entity.Job) (*entity.Job, error)
	findByID         func(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	findPublicBySlug func(ctx context.Context, companyID uuid.UUID, jobSlug string) (*entity.Job, error)
	listByCompany    func(ctx context.Context, companyID uuid.UUID, publishedOnly bool) ([]entity.Job, error)
	update           func(ctx context.Context, id uuid.UUID, fields repository.JobUpdate) (*entity.Job, error)
	bulkSetPublished func(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, published bool) (int64, error)
	bulkDelete       func(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int64, error)
}

func (m *mockJobsRepository) Create(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	if m.create != nil {
		return m.create(ctx, job)
	}
	return nil, errors.New("Create not implemented")
}

func (m *mockJobsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockJobsRepository) FindPublicBySlug(ctx context.Context, companyID uuid.UUID, jobSlug string) (*entity.Job, error) {
	if m.findPublicBySlug != nil {
		return m.findPublicBySlug(ctx, companyID, jobSlug)
	}
	return nil, errors.New("FindPublicBySlug not implemented")
}

func (m *mockJobsRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, publishedOnly bool) ([]entity.Job, error) {
	if m.listByCompany != nil {
		return m.listByCompany(ctx, companyID, publishedOnly)
	}
	return nil, errors.New("ListByCompany not implemented")
}

func (m *mockJobsRepository) Update(ctx context.Context, id uuid.UUID, fields repository.JobUpdate) (*entity.Job, error) {
	if m.update != nil {
		return m.update(ctx, id, fields)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockJobsRepository) BulkSetPublished(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, published bool) (int64, error) {
	if m.bulkSetPublished != nil {
		return m.bulkSetPublished(ctx, companyID, ids, published)
	}
	return 0, errors.New("BulkSetPublished not implemented")
}

func (m *mockJobsRepository) BulkDelete(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if m.bulkDelete != nil {
		return m.bulkDelete(ctx, companyID, ids)
	}
	return 0, errors.New("BulkDelete not implemented")
}

type mockApplicationsRepository struct {
	create    func(ctx context.Context, application *entity.Application) (*entity.Application, error)
	listByJob func(ctx context.Context, jobID uuid.UUID) ([]entity.Application, error)
}

func (m *mockApplicationsRepository) Create(ctx context.Context, application *entity.Application) (*entity.Application, error) {
	if m.create != nil {
		return m.create(ctx, application)
	}
	return nil, errors.New("Create not implemented")
}

func (m *mockApplicationsRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Application, error) {
	if m.listByJob != nil {
		return m.listByJob(ctx, jobID)
	}
	return nil, errors.New("ListByJob not implemented")
}

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("FindByEmail not implemented")
}

func (m *mockUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash)
	}
	return nil, errors.New("Create not implemented")
}
