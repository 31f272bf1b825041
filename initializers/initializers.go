package initializers

import (
	"hotel-ops-backend/config"
	"hotel-ops-backend/fiberlog"
	documenthandler "hotel-ops-backend/lib/document-change"
	employeehandler "hotel-ops-backend/lib/employee"
	xlsexport "hotel-ops-backend/lib/export/xls"
	inboxhandler "hotel-ops-backend/lib/inbox"
	leavehandler "hotel-ops-backend/lib/leave-request"
	notificationhandler "hotel-ops-backend/lib/notification"
	transferhandler "hotel-ops-backend/lib/transfer-request"
	workflowhandler "hotel-ops-backend/lib/workflow"
	connectionhub "hotel-ops-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	connectionhub.Init()
	notificationhandler.NewHandler()

	// engine before the domain handlers that delegate to it
	workflowhandler.NewHandler(notificationhandler.Instance)
	workflowhandler.Instance.Register(leavehandler.NewBinding())
	workflowhandler.Instance.Register(documenthandler.NewBinding())
	workflowhandler.Instance.Register(transferhandler.NewBinding())

	leavehandler.NewHandler()
	documenthandler.NewHandler()
	transferhandler.NewHandler()
	inboxhandler.NewHandler()
	employeehandler.NewHandler()
	xlsexport.NewHandler()
}
