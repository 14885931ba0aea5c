package billing

import (
	"errors"

	"github.com/revoa-app/support-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Erros específicos para o contexto de cobrança
var (
	ErrInvalidCheckoutRequest = errors.New("invalid checkout session request")
)

// CheckoutManager cria sessões de checkout para assinaturas
type CheckoutManager interface {
	CreateCheckoutSession(request *domain.CheckoutSessionRequest) (*domain.CheckoutSessionResponse, error)
}

type Service struct {
	stripeClient stripeclient.Client
}

func NewService(stripeClient stripeclient.Client) CheckoutManager {
	return &Service{
		stripeClient: stripeClient,
	}
}

func (s *Service) CreateCheckoutSession(request *domain.CheckoutSessionRequest) (*domain.CheckoutSessionResponse, error) {
	if request == nil || request.PriceID == "" || request.SuccessURL == "" || request.CancelURL == "" {
		return nil, ErrInvalidCheckoutRequest
	}

	quantity := request.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	session, err := s.stripeClient.CreateCheckoutSession(request.PriceID, quantity, request.SuccessURL, request.CancelURL)
	if err != nil {
		return nil, err
	}

	logrus.WithField("session_id", session.ID).Info("billing: sessão de checkout criada")

	return &domain.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
