package app

import (
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/slack"
)

// Clients holds all external integration clients
type Clients struct {
	Slack *slack.Client
}

func (app *Application) initializeClients() error {
	app.clients = &Clients{
		Slack: slack.NewClient(app.config.Slack.BotToken, slack.Options{
			APIURL: app.config.Slack.APIURL,
			Debug:  app.config.Slack.Debug,
			Logger: app.logger.Get(),
		}),
	}

	app.logger.Get().Info("Slack integration enabled",
		"api_url", app.config.Slack.APIURL,
		"debug", app.config.Slack.Debug,
	)

	return nil
}
