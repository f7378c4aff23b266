package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"recycling/internal/gateway/kafka/bag_events"
	"recycling/internal/handlers/tasks/pending_bags"
	"recycling/internal/handlers/tasks/voucher_expiry"
	"recycling/internal/pkg/config"
	"recycling/internal/pkg/factory/bag_status_handle"
	"recycling/internal/pkg/factory/reward_policy"
	"recycling/internal/pkg/qr"
	agentRepo "recycling/internal/repository/agent"
	assignmentRepo "recycling/internal/repository/assignment"
	bagRepo "recycling/internal/repository/bag"
	chatRepo "recycling/internal/repository/chat"
	ledgerRepo "recycling/internal/repository/ledger"
	notificationRepo "recycling/internal/repository/notification"
	ratingRepo "recycling/internal/repository/rating"
	storeRepo "recycling/internal/repository/store"
	"recycling/internal/repository/storecache"
	userRepo "recycling/internal/repository/user"
	voucherRepo "recycling/internal/repository/voucher"
	agentService "recycling/internal/service/agent"
	assignmentService "recycling/internal/service/assignment"
	authService "recycling/internal/service/auth"
	bagService "recycling/internal/service/bag"
	chatService "recycling/internal/service/chat"
	dispatchService "recycling/internal/service/dispatch"
	ledgerService "recycling/internal/service/ledger"
	matcherService "recycling/internal/service/matcher"
	notificationService "recycling/internal/service/notification"
	storeService "recycling/internal/service/store"
	userService "recycling/internal/service/user"
	voucherService "recycling/internal/service/voucher"
	"recycling/pkg/background"
	"recycling/pkg/logger"
	"recycling/pkg/querier"
	"recycling/pkg/token"
	"recycling/pkg/tx"
	"recycling/pkg/vouchercode"
)

type (
	PendingBagsInterval   time.Duration
	VoucherExpiryInterval time.Duration
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRewardPolicy() *reward_policy.Policy {
	return reward_policy.New()
}

func provideTokenIssuer(cfg *config.Config) (*token.Issuer, error) {
	return token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideCodeGenerator() *vouchercode.Generator {
	return vouchercode.New(voucherCodeLength)
}

func provideQRRenderer() *qr.Renderer {
	return qr.New(qrSize)
}

func provideBagEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *bag_events.BagEventsGateway {
	return bag_events.New(producer, cfg.Kafka.Topic)
}

func providePendingBagsInterval(cfg *config.Config) PendingBagsInterval {
	return PendingBagsInterval(cfg.Tasks.PendingBagsInterval)
}

func provideVoucherExpiryInterval(cfg *config.Config) VoucherExpiryInterval {
	return VoucherExpiryInterval(cfg.Tasks.VoucherExpiryInterval)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideBagRepository(querier *querier.Querier) *bagRepo.Repository {
	return bagRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideVoucherRepository(querier *querier.Querier) *voucherRepo.Repository {
	return voucherRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideStoreRepository(querier *querier.Querier) *storeRepo.Repository {
	return storeRepo.New(querier)
}

// provideStoreCache каталог магазинов читается через Redis, база остаётся источником.
func provideStoreCache(
	log logger.Logger,
	source *storeRepo.Repository,
	redisClient *redis.Client,
	cfg *config.Config,
) *storecache.Repository {
	return storecache.New(log, source, redisClient, cfg.Redis.CacheTTL)
}

func provideNotificationService(repository *notificationRepo.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

func provideLedgerService(
	log logger.Logger,
	repository *ledgerRepo.Repository,
	policy *reward_policy.Policy,
	txManager *tx.Manager,
) *ledgerService.Ledger {
	return ledgerService.New(log, repository, policy, txManager)
}

func provideMatcherService(
	log logger.Logger,
	repository *assignmentRepo.Repository,
	bags *bagRepo.Repository,
	users *userRepo.Repository,
	notifier *notificationService.Notification,
	events *bag_events.BagEventsGateway,
	txManager *tx.Manager,
) *matcherService.Matcher {
	return matcherService.New(log, repository, bags, users, notifier, events, txManager)
}

func provideAuthService(
	users *userRepo.Repository,
	agents *agentRepo.Repository,
	tokens *token.Issuer,
) *authService.Auth {
	return authService.New(users, agents, tokens)
}

func provideUserService(repository *userRepo.Repository) *userService.User {
	return userService.New(repository)
}

func provideAgentService(
	repository *agentRepo.Repository,
	notifier *notificationService.Notification,
	txManager *tx.Manager,
) *agentService.Agent {
	return agentService.New(repository, notifier, txManager)
}

func provideBagService(
	log logger.Logger,
	repository *bagRepo.Repository,
	assignments *assignmentRepo.Repository,
	agents *agentRepo.Repository,
	ratings *ratingRepo.Repository,
	ledger *ledgerService.Ledger,
	matcher *matcherService.Matcher,
	notifier *notificationService.Notification,
	events *bag_events.BagEventsGateway,
	policy *reward_policy.Policy,
	txManager *tx.Manager,
) *bagService.Bag {
	return bagService.New(log, repository, assignments, agents, ratings, ledger, matcher, notifier, events, policy, txManager)
}

func provideAssignmentService(
	log logger.Logger,
	repository *assignmentRepo.Repository,
	bags *bagRepo.Repository,
	users *userRepo.Repository,
	agents *agentRepo.Repository,
	ledger *ledgerService.Ledger,
	notifier *notificationService.Notification,
	events *bag_events.BagEventsGateway,
	policy *reward_policy.Policy,
	txManager *tx.Manager,
) *assignmentService.Assignment {
	return assignmentService.New(log, repository, bags, users, agents, ledger, notifier, events, policy, txManager)
}

func provideVoucherService(
	log logger.Logger,
	repository *voucherRepo.Repository,
	branches *storecache.Repository,
	ledger *ledgerService.Ledger,
	codes *vouchercode.Generator,
	renderer *qr.Renderer,
	notifier *notificationService.Notification,
	txManager *tx.Manager,
	cfg *config.Config,
) *voucherService.Voucher {
	return voucherService.New(log, repository, branches, ledger, codes, renderer, notifier, txManager, voucherService.Config{
		TTL: cfg.Rewards.VoucherTTL,
	})
}

func provideChatService(
	repository *chatRepo.Repository,
	assignments *assignmentRepo.Repository,
	bags *bagRepo.Repository,
	notifier *notificationService.Notification,
	txManager *tx.Manager,
) *chatService.Chat {
	return chatService.New(repository, assignments, bags, notifier, txManager)
}

func provideStoreService(repository *storecache.Repository) *storeService.Store {
	return storeService.New(repository)
}

func provideStatusHandlerFactory(
	matcher *matcherService.Matcher,
	ledger *ledgerService.Ledger,
) *bag_status_handle.StatusHandlerFactory {
	return bag_status_handle.NewStatusHandlerFactory(matcher, ledger)
}

// provideDispatchService создает dispatch для обработки событий Kafka
func provideDispatchService(
	bags *bagRepo.Repository,
	statusFactory *bag_status_handle.StatusHandlerFactory,
) *dispatchService.Service {
	return dispatchService.New(bags, statusFactory)
}

func providePendingBagsTask(
	log logger.Logger,
	matcher pending_bags.Service,
	interval PendingBagsInterval,
) *pending_bags.PendingBags {
	return pending_bags.NewPendingBags(log, matcher, time.Duration(interval))
}

func provideVoucherExpiryTask(
	log logger.Logger,
	vouchers voucher_expiry.Service,
	interval VoucherExpiryInterval,
) *voucher_expiry.VoucherExpiry {
	return voucher_expiry.NewVoucherExpiry(log, vouchers, time.Duration(interval))
}

func provideTaskList(
	pendingBagsTask *pending_bags.PendingBags,
	voucherExpiryTask *voucher_expiry.VoucherExpiry,
) []background.Task {
	return []background.Task{
		pendingBagsTask,
		voucherExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
