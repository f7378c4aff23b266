package app

import (
	"recycling/internal/handlers/rest/activities_get"
	"recycling/internal/handlers/rest/admin_activity_post"
	"recycling/internal/handlers/rest/admin_agent_approval_put"
	"recycling/internal/handlers/rest/admin_agents_get"
	"recycling/internal/handlers/rest/admin_reconcile_post"
	"recycling/internal/handlers/rest/agent_board_get"
	"recycling/internal/handlers/rest/agent_history_get"
	"recycling/internal/handlers/rest/agent_profile_get"
	"recycling/internal/handlers/rest/agent_profile_put"
	"recycling/internal/handlers/rest/assignment_action_post"
	"recycling/internal/handlers/rest/assignment_reason_post"
	"recycling/internal/handlers/rest/assignment_verify_post"
	"recycling/internal/handlers/rest/auth_login_post"
	"recycling/internal/handlers/rest/auth_register_agent_post"
	"recycling/internal/handlers/rest/auth_register_user_post"
	"recycling/internal/handlers/rest/bag_assignment_get"
	"recycling/internal/handlers/rest/bag_cancel_post"
	"recycling/internal/handlers/rest/bag_confirm_post"
	"recycling/internal/handlers/rest/bag_current_get"
	"recycling/internal/handlers/rest/bag_post"
	"recycling/internal/handlers/rest/bag_rating_put"
	"recycling/internal/handlers/rest/bags_get"
	"recycling/internal/handlers/rest/balance_get"
	"recycling/internal/handlers/rest/branch_get"
	"recycling/internal/handlers/rest/chat_message_post"
	"recycling/internal/handlers/rest/chat_messages_get"
	"recycling/internal/handlers/rest/item_types_get"
	"recycling/internal/handlers/rest/notification_read_post"
	"recycling/internal/handlers/rest/notifications_delete"
	"recycling/internal/handlers/rest/notifications_get"
	"recycling/internal/handlers/rest/notifications_read_all_post"
	"recycling/internal/handlers/rest/password_put"
	"recycling/internal/handlers/rest/stores_get"
	"recycling/internal/handlers/rest/user_profile_get"
	"recycling/internal/handlers/rest/user_profile_put"
	"recycling/internal/handlers/rest/voucher_active_get"
	"recycling/internal/handlers/rest/voucher_post"
	"recycling/internal/handlers/rest/voucher_qr_get"
	"recycling/internal/handlers/rest/voucher_usages_get"
	"recycling/internal/handlers/rest/voucher_use_post"
	"recycling/internal/handlers/rest/vouchers_get"
	dispatchService "recycling/internal/service/dispatch"
	"recycling/pkg/background"
	"recycling/pkg/token"
)

const (
	voucherCodeLength = 8
	qrSize            = 256
)

type Application struct {
	Auth          ServiceAuth
	Users         ServiceUser
	Agents        ServiceAgent
	Bags          ServiceBag
	Assignments   ServiceAssignment
	Ledger        ServiceLedger
	Vouchers      ServiceVoucher
	Notifications ServiceNotification
	Chat          ServiceChat
	Stores        ServiceStore

	Tokens            *token.Issuer
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	auth_register_user_post.Service
	auth_register_agent_post.Service
	auth_login_post.Service
	password_put.Service
}

type ServiceUser interface {
	user_profile_get.Service
	user_profile_put.Service
}

type ServiceAgent interface {
	agent_profile_get.Service
	agent_profile_put.Service
	admin_agents_get.Service
	admin_agent_approval_put.Service
}

type ServiceBag interface {
	bag_post.Service
	bags_get.Service
	bag_current_get.Service
	bag_cancel_post.Service
	bag_confirm_post.Service
	bag_rating_put.Service
	item_types_get.Service
}

type ServiceAssignment interface {
	bag_assignment_get.Service
	agent_board_get.Service
	agent_history_get.Service
	assignment_action_post.Service
	assignment_verify_post.Service
	assignment_reason_post.Service
}

type ServiceLedger interface {
	balance_get.Service
	activities_get.Service
	admin_activity_post.Service
	admin_reconcile_post.Service
}

type ServiceVoucher interface {
	voucher_post.Service
	vouchers_get.Service
	voucher_active_get.Service
	voucher_usages_get.Service
	voucher_qr_get.Service
	voucher_use_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
	notifications_read_all_post.Service
	notifications_delete.Service
}

type ServiceChat interface {
	chat_messages_get.Service
	chat_message_post.Service
}

type ServiceStore interface {
	stores_get.Service
	branch_get.Service
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Service
}
