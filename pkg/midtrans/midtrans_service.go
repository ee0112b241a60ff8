package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateOrderTransaction(ctx context.Context, order *entities.Order, email string) (string, error)
		HandleNotification(ctx context.Context, payload map[string]interface{}) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		snapClient         snap.Client
		serverKey          string
	}
)

func NewMidtransService(midtransRepository MidtransRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	serverKey := utils.GetConfig("SERVER_KEY")
	var client snap.Client
	client.New(serverKey, env)

	return &midtransService{
		midtransRepository: midtransRepository,
		snapClient:         client,
		serverKey:          serverKey,
	}
}

func (s *midtransService) CreateOrderTransaction(ctx context.Context, order *entities.Order, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.ID.String(),
			GrossAmt: int64(order.Total),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := s.snapClient.CreateTransaction(req)
	if err != nil {
		return "", domain.ErrPaymentGatewayRejected
	}

	return resp.RedirectURL, nil
}

func (s *midtransService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderID, _ := payload["order_id"].(string)
	transactionStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)
	transactionID, _ := payload["transaction_id"].(string)
	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signatureKey, _ := payload["signature_key"].(string)

	if orderID == "" {
		return domain.ErrOrderNotFound
	}

	// The endpoint is unauthenticated; the signature proves the notification
	// came from Midtrans before any order state changes.
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + s.serverKey))
	expected := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) != 1 {
		return domain.ErrSignatureInvalid
	}

	if _, err := s.midtransRepository.GetOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	settled := transactionStatus == "settlement" ||
		(transactionStatus == "capture" && fraudStatus == "accept")
	if !settled {
		// Pending, denied and expired notifications leave the order as is;
		// an admin cancels stale PENDING orders which also restores stock.
		return nil
	}

	return s.midtransRepository.MarkOrderPaid(ctx, orderID, transactionID)
}
