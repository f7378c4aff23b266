package voucher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recycling/internal/entities"
	"recycling/internal/pkg/qr"
	"recycling/pkg/logger"
)

const (
	defaultTTL      = 48 * time.Hour
	maxCodeAttempts = 5
)

type Config struct {
	TTL time.Duration
}

type Voucher struct {
	log        serviceLogger
	repository Repository
	branches   BranchRepository
	ledger     Ledger
	codes      CodeGenerator
	renderer   QRRenderer
	notifier   Notifier
	txManager  TxManager
	ttl        time.Duration
}

func New(
	log serviceLogger,
	repository Repository,
	branches BranchRepository,
	ledger Ledger,
	codes CodeGenerator,
	renderer QRRenderer,
	notifier Notifier,
	txManager TxManager,
	cfg Config,
) *Voucher {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Voucher{
		log:        log.With(logger.NewField("service", "voucher")),
		repository: repository,
		branches:   branches,
		ledger:     ledger,
		codes:      codes,
		renderer:   renderer,
		notifier:   notifier,
		txManager:  txManager,
		ttl:        ttl,
	}
}

// Issue обменивает награды владельца на ваучер. Строка баланса блокируется на всю транзакцию,
// поэтому два параллельных выпуска не могут оба пройти проверку остатка.
func (s *Voucher) Issue(ctx context.Context, holder entities.Holder, amount int64) (*entities.VoucherIssue, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < minAmount[holder.Kind] {
		return nil, fmt.Errorf("%w: minimum is %d EGP", ErrAmountTooSmall, minAmount[holder.Kind])
	}

	var issued *entities.VoucherIssue
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.ledger.Lock(ctx, holder)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		now := time.Now().UTC()
		active, err := s.repository.GetActiveForHolder(ctx, holder, now)
		switch {
		case err == nil:
			return &ActiveVoucherError{Voucher: *active}
		case errors.Is(err, ErrVoucherNotFound):
		default:
			return fmt.Errorf("get active voucher: %w", err)
		}

		code, err := s.uniqueCode(ctx)
		if err != nil {
			return err
		}

		expiresAt := now.Add(s.ttl)
		payload, err := qr.Payload(entities.VoucherDescriptor{
			Code:       code,
			Amount:     amount,
			HolderType: holder.Kind.String(),
			Email:      locked.Email,
			ExpiresAt:  expiresAt,
		})
		if err != nil {
			return err
		}

		created, err := s.repository.Create(ctx, entities.Voucher{
			Holder:      holder,
			HolderEmail: locked.Email,
			Code:        code,
			Amount:      amount,
			QRPayload:   payload,
			ExpiresAt:   expiresAt,
		})
		if err != nil {
			return fmt.Errorf("create voucher: %w", err)
		}

		balance, err := s.ledger.Debit(ctx, holder, amount, fmt.Sprintf("Redeemed %d EGP for voucher", amount))
		if err != nil {
			return fmt.Errorf("debit rewards: %w", err)
		}

		err = s.notifier.Notify(ctx, holder, "Voucher generated",
			fmt.Sprintf("Voucher generated successfully for %d EGP. Code: %s. Expires in %d hours.",
				amount, code, int(s.ttl.Hours())),
			entities.NotificationVoucher)
		if err != nil {
			return fmt.Errorf("notify holder: %w", err)
		}

		issued = &entities.VoucherIssue{
			Voucher: *created,
			Balance: *balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	VouchersIssuedTotal.WithLabelValues(holder.Kind.String()).Inc()
	s.log.Info("voucher issued",
		logger.NewField("holder_type", holder.Kind.String()),
		logger.NewField("holder", holder.ID),
		logger.NewField("amount", amount),
	)
	return issued, nil
}

// Use погашает ваучер в филиале. Истёкший ваучер не помечается использованным,
// о нём сообщает задача voucher_expiry.
func (s *Voucher) Use(ctx context.Context, code string, branchID int64) (*entities.VoucherRedemption, error) {
	code = normalizeCode(code)
	if !isValidCode(code) {
		return nil, ErrInvalidCode
	}
	if branchID <= 0 {
		return nil, ErrInvalidBranchID
	}

	var redemption *entities.VoucherRedemption
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByCodeForUpdate(ctx, code)
		if err != nil {
			return fmt.Errorf("get voucher: %w", err)
		}
		if current.IsUsed {
			return ErrVoucherAlreadyUsed
		}
		now := time.Now().UTC()
		if !current.ExpiresAt.After(now) {
			return ErrVoucherExpired
		}

		branch, err := s.branches.GetBranch(ctx, branchID)
		if err != nil {
			return fmt.Errorf("get branch: %w", err)
		}

		used, err := s.repository.MarkUsed(ctx, current.ID, branch.ID, now)
		if err != nil {
			return fmt.Errorf("mark voucher used: %w", err)
		}

		_, err = s.repository.CreateUsage(ctx, entities.VoucherUsage{
			VoucherID:  used.ID,
			Code:       used.Code,
			Amount:     used.Amount,
			BranchID:   branch.ID,
			BranchName: branch.Name,
			StoreName:  branch.StoreName,
			UsedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("record usage: %w", err)
		}

		err = s.notifier.Notify(ctx, used.Holder, "Voucher used",
			fmt.Sprintf("Your voucher worth %d EGP was used at %s", used.Amount, branch.Name),
			entities.NotificationVoucher)
		if err != nil {
			return fmt.Errorf("notify holder: %w", err)
		}

		redemption = &entities.VoucherRedemption{
			Voucher: *used,
			Branch:  *branch,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	VouchersUsedTotal.WithLabelValues(redemption.Voucher.Holder.Kind.String()).Inc()
	return redemption, nil
}

func (s *Voucher) ActiveVoucher(ctx context.Context, holder entities.Holder) (*entities.Voucher, error) {
	active, err := s.repository.GetActiveForHolder(ctx, holder, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get active voucher: %w", err)
	}
	return active, nil
}

func (s *Voucher) Vouchers(ctx context.Context, holder entities.Holder) ([]entities.Voucher, error) {
	vouchers, err := s.repository.ListForHolder(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	return vouchers, nil
}

func (s *Voucher) Usages(ctx context.Context, holder entities.Holder) ([]entities.VoucherUsage, error) {
	usages, err := s.repository.ListUsagesForHolder(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("list voucher usages: %w", err)
	}
	return usages, nil
}

// QRCode PNG с описанием ваучера. Чужой ваучер не отдаётся.
func (s *Voucher) QRCode(ctx context.Context, holder entities.Holder, code string) ([]byte, error) {
	code = normalizeCode(code)
	if !isValidCode(code) {
		return nil, ErrInvalidCode
	}

	found, err := s.repository.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	if found.Holder != holder {
		return nil, ErrVoucherNotFound
	}

	png, err := s.renderer.PNG(found.QRPayload)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}

// NotifyExpired сообщает владельцам о ваучерах, истёкших без использования. Каждый ваучер один раз.
func (s *Voucher) NotifyExpired(ctx context.Context, limit int) (int, error) {
	expired, err := s.repository.ListExpiredUnnotified(ctx, time.Now().UTC(), limit)
	if err != nil {
		return 0, fmt.Errorf("list expired vouchers: %w", err)
	}

	notified := 0
	for _, v := range expired {
		var marked bool
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			marked, err = s.repository.MarkExpiryNotified(ctx, v.ID)
			if err != nil {
				return fmt.Errorf("mark expiry notified: %w", err)
			}
			if !marked {
				return nil
			}
			return s.notifier.Notify(ctx, v.Holder, "Voucher expired",
				fmt.Sprintf("Your voucher %s worth %d EGP expired unused.", v.Code, v.Amount),
				entities.NotificationVoucher)
		})
		if err != nil {
			return notified, fmt.Errorf("voucher %d: %w", v.ID, err)
		}
		if marked {
			notified++
		}
	}
	return notified, nil
}

func (s *Voucher) uniqueCode(ctx context.Context) (string, error) {
	for range maxCodeAttempts {
		code, err := s.codes.Generate()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		exists, err := s.repository.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeCollision
}
