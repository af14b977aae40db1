package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	bedrockclient "github.com/predictkick/oracle-backend/internal/client/bedrock"
	chainclient "github.com/predictkick/oracle-backend/internal/client/chain"
	footballclient "github.com/predictkick/oracle-backend/internal/client/football"
	telegramclient "github.com/predictkick/oracle-backend/internal/client/telegram"
	"github.com/predictkick/oracle-backend/internal/config"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

// Bootstrap holds the process-wide clients, constructed once at startup and
// injected into services. The clients are stateless and need no teardown
// beyond Close on the chain connection.
type Bootstrap struct {
	Log      *slog.Logger
	Football *footballclient.Adapter
	Agent    *bedrockclient.Adapter
	Chain    *chainclient.Adapter
	Registry *chainclient.FunctionRegistry
	Telegram *telegramclient.Adapter
	Secrets  *secretsmanager.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudWatchHandler)

	awsCfg, err := InitAWS(applicationCtx, cfg.Region)
	if err != nil {
		return bs, err
	}
	bs.Agent = bedrockclient.NewAdapter(
		bedrockagentruntime.NewFromConfig(awsCfg), cfg.AgentID, cfg.AgentAliasID)
	bs.Secrets = secretsmanager.NewFromConfig(awsCfg)

	bs.Football = footballclient.NewAdapter(
		&http.Client{Timeout: 30 * time.Second},
		cfg.FootballBaseURL, cfg.FootballToken, cfg.CompetitionID)

	bs.Chain, err = chainclient.NewAdapter(cfg.RPCURL, cfg.ContractAddress)
	if err != nil {
		return bs, err
	}
	bs.Registry, err = chainclient.NewFunctionRegistry(cfg.ContractABI)
	if err != nil {
		return bs, err
	}

	bs.Telegram, err = telegramclient.NewAdapter(cfg.TelegramToken)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

// RunTrigger builds the lighter client set the trigger binary needs: just
// the logger and the hosted-agent adapter.
func RunTrigger(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudWatchHandler)

	awsCfg, err := InitAWS(applicationCtx, cfg.Region)
	if err != nil {
		return bs, err
	}
	bs.Agent = bedrockclient.NewAdapter(
		bedrockagentruntime.NewFromConfig(awsCfg), cfg.AgentID, cfg.AgentAliasID)

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Chain != nil {
		bs.Chain.Close()
	}
}
