//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"recycling/internal/handlers/tasks/pending_bags"
	"recycling/internal/handlers/tasks/voucher_expiry"
	"recycling/internal/pkg/config"
	agentService "recycling/internal/service/agent"
	assignmentService "recycling/internal/service/assignment"
	authService "recycling/internal/service/auth"
	bagService "recycling/internal/service/bag"
	chatService "recycling/internal/service/chat"
	ledgerService "recycling/internal/service/ledger"
	matcherService "recycling/internal/service/matcher"
	notificationService "recycling/internal/service/notification"
	storeService "recycling/internal/service/store"
	userService "recycling/internal/service/user"
	voucherService "recycling/internal/service/voucher"
	"recycling/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRewardPolicy,
		provideTokenIssuer,
		provideCodeGenerator,
		provideQRRenderer,
		provideBagEventsGateway,
		providePendingBagsInterval,
		provideVoucherExpiryInterval,

		provideUserRepository,
		provideAgentRepository,
		provideBagRepository,
		provideAssignmentRepository,
		provideLedgerRepository,
		provideVoucherRepository,
		provideNotificationRepository,
		provideChatRepository,
		provideRatingRepository,
		provideStoreRepository,
		provideStoreCache,

		provideNotificationService,
		provideLedgerService,
		provideMatcherService,
		provideAuthService,
		provideUserService,
		provideAgentService,
		provideBagService,
		provideAssignmentService,
		provideVoucherService,
		provideChatService,
		provideStoreService,

		providePendingBagsTask,
		provideVoucherExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceBag), new(*bagService.Bag)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceVoucher), new(*voucherService.Voucher)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),
		wire.Bind(new(ServiceStore), new(*storeService.Store)),

		wire.Bind(new(pending_bags.Service), new(*matcherService.Matcher)),
		wire.Bind(new(voucher_expiry.Service), new(*voucherService.Voucher)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-bag-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRewardPolicy,
		provideBagEventsGateway,

		provideUserRepository,
		provideBagRepository,
		provideAssignmentRepository,
		provideLedgerRepository,
		provideNotificationRepository,

		provideNotificationService,
		provideLedgerService,
		provideMatcherService,
		provideStatusHandlerFactory,
		provideDispatchService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
