package bootstrap

import (
	"context"

	"residesk/internal/platform/events"
	"residesk/internal/platform/mailer"
	"residesk/internal/platform/otp"
	"residesk/internal/pkg/config"
	"residesk/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PlatformModule = fx.Module("platform",
	fx.Provide(
		NewRedis,
		NewOTPStore,
		NewMailer,
		NewEventPublisher,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := otp.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewOTPStore(client *redis.Client, cfg config.Config) commands.OTPStore {
	return otp.NewStore(client, cfg.OTP)
}

func NewMailer(cfg config.Config) commands.Mailer {
	return mailer.New(cfg.Mail)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	pub, cleanup, err := events.New(cfg.NATS)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pub, nil
}
