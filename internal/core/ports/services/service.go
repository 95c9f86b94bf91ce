package services

// ServiceContainer holds all service interfaces needed by the HTTP layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Export      ExportSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
