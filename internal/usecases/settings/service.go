package settings

import (
	"fmt"

	"github.com/revoa-app/support-api/infrastructure/repository"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/pkg/utils"
)

// StoreSettingsManager administra modelos de e-mail e a configuração de CAPI
// das lojas conectadas
type StoreSettingsManager interface {
	ListEmailTemplates(storeID string) ([]*domain.EmailTemplate, error)
	CreateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error)
	UpdateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error)
	DeleteEmailTemplate(templateID string) error

	GetCapiSettings(storeID string) (*domain.CapiSettings, error)
	SaveCapiSettings(settings *domain.CapiSettings) error
}

type Service struct {
	emailTemplateRepository repository.EmailTemplateRepository
	capiSettingsRepository  repository.CapiSettingsRepository
}

func NewService(
	emailTemplateRepo repository.EmailTemplateRepository,
	capiSettingsRepo repository.CapiSettingsRepository,
) StoreSettingsManager {
	return &Service{
		emailTemplateRepository: emailTemplateRepo,
		capiSettingsRepository:  capiSettingsRepo,
	}
}

func (s *Service) ListEmailTemplates(storeID string) ([]*domain.EmailTemplate, error) {
	if storeID == "" {
		return nil, ErrStoreIDRequired
	}

	return s.emailTemplateRepository.ListByStore(storeID)
}

func (s *Service) CreateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if template == nil || template.StoreID == "" {
		return nil, ErrStoreIDRequired
	}

	if template.Name == "" || template.Subject == "" {
		return nil, ErrInvalidTemplate
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}
	template.ID = id

	if err := s.emailTemplateRepository.Create(template); err != nil {
		return nil, fmt.Errorf("erro ao criar modelo de e-mail: %w", err)
	}

	return template, nil
}

func (s *Service) UpdateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if template == nil || template.ID == "" {
		return nil, ErrTemplateIDRequired
	}

	if template.Name == "" || template.Subject == "" {
		return nil, ErrInvalidTemplate
	}

	existing, err := s.emailTemplateRepository.GetByID(template.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar modelo de e-mail: %w", err)
	}

	if existing == nil {
		return nil, ErrTemplateNotFound
	}

	if err := s.emailTemplateRepository.Update(template); err != nil {
		return nil, fmt.Errorf("erro ao atualizar modelo de e-mail: %w", err)
	}

	return template, nil
}

func (s *Service) DeleteEmailTemplate(templateID string) error {
	if templateID == "" {
		return ErrTemplateIDRequired
	}

	existing, err := s.emailTemplateRepository.GetByID(templateID)
	if err != nil {
		return fmt.Errorf("erro ao buscar modelo de e-mail: %w", err)
	}

	if existing == nil {
		return ErrTemplateNotFound
	}

	return s.emailTemplateRepository.Delete(templateID)
}

func (s *Service) GetCapiSettings(storeID string) (*domain.CapiSettings, error) {
	if storeID == "" {
		return nil, ErrStoreIDRequired
	}

	return s.capiSettingsRepository.GetByStore(storeID)
}

func (s *Service) SaveCapiSettings(settings *domain.CapiSettings) error {
	if settings == nil || settings.StoreID == "" {
		return ErrStoreIDRequired
	}

	// Habilitar a CAPI exige pixel e token configurados
	if settings.Enabled && (settings.PixelID == "" || settings.AccessToken == "") {
		return ErrInvalidCapiConfig
	}

	return s.capiSettingsRepository.SaveOrUpdate(settings)
}
