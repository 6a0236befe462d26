package usecase

import (
	"context"
	"errors"
	"fmt"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidConfirmation   = errors.New("invalid purchase confirmation")
	ErrNotifierNotConfigured = errors.New("notifier not configured")
)

const (
	purchaseConfirmationSubject = "Presente confirmado: %s"
	purchaseConfirmationBody    = "Olá!\n\n" +
		"%s confirmou a compra do presente \"%s\" da lista de presentes.\n\n" +
		"Esta é uma mensagem automática, não é necessário respondê-la.\n"
)

// INotificationUseCase sends the fixed-template purchase confirmation email.

type INotificationUseCase interface {
	SendPurchaseConfirmation(ctx context.Context, c entities.PurchaseConfirmation) error
}

type NotificationUseCase struct {
	notifier interfaces.INotifier
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifier interfaces.INotifier) *NotificationUseCase {
	return &NotificationUseCase{notifier: notifier}
}

// SendPurchaseConfirmation blocks for the SMTP round trip. It never retries.
func (u *NotificationUseCase) SendPurchaseConfirmation(ctx context.Context, c entities.PurchaseConfirmation) error {
	c.UserName = strings.TrimSpace(c.UserName)
	c.ProductName = strings.TrimSpace(c.ProductName)
	if c.UserName == "" || c.ProductName == "" {
		return ErrInvalidConfirmation
	}
	if u.notifier == nil {
		return ErrNotifierNotConfigured
	}

	subject, body := FormatPurchaseConfirmation(c)
	fields := logrus.Fields{"nome_usuario": c.UserName, "nome_produto": c.ProductName}
	if err := u.notifier.Send(ctx, subject, body); err != nil {
		logging.Log.WithFields(fields).Errorf("[email][usecase] send failed err=%v", err)
		return err
	}
	logging.Log.WithFields(fields).Info("[email][usecase] send success")
	return nil
}

// FormatPurchaseConfirmation renders the subject and plaintext body.
func FormatPurchaseConfirmation(c entities.PurchaseConfirmation) (subject, body string) {
	return fmt.Sprintf(purchaseConfirmationSubject, c.ProductName),
		fmt.Sprintf(purchaseConfirmationBody, c.UserName, c.ProductName)
}
