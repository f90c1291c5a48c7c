package azure

import (
	"github.com/elC0mpa/azure-advisor/model"
	azureappservice "github.com/elC0mpa/azure-advisor/service/azure/appservice"
	azurecompute "github.com/elC0mpa/azure-advisor/service/azure/compute"
	azureconfig "github.com/elC0mpa/azure-advisor/service/azure/config"
	azurecostmanagement "github.com/elC0mpa/azure-advisor/service/azure/costmanagement"
	azureidentity "github.com/elC0mpa/azure-advisor/service/azure/identity"
	azuremonitor "github.com/elC0mpa/azure-advisor/service/azure/monitor"
	azurenetwork "github.com/elC0mpa/azure-advisor/service/azure/network"
	"github.com/elC0mpa/azure-advisor/service/provider"
)

// Factory builds ARM clients for one credential bundle per call.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) NewClients(bundle model.CredentialBundle) (*provider.Clients, error) {
	cfg, err := azureconfig.NewService(bundle)
	if err != nil {
		return nil, err
	}

	subscriptionID := cfg.GetSubscriptionID()
	credential := cfg.GetCredential()
	options := cfg.GetClientOptions()

	identityService, err := azureidentity.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	computeService, err := azurecompute.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	networkService, err := azurenetwork.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	monitorService, err := azuremonitor.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	appService, err := azureappservice.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	costService, err := azurecostmanagement.NewService(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &provider.Clients{
		Identity:   identityService,
		Compute:    computeService,
		Network:    networkService,
		Monitor:    monitorService,
		AppService: appService,
		Cost:       costService,
	}, nil
}
