package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

// HS256 keys shorter than the hash output weaken the signature.
const minSecretBytes = 32

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config, logger *slog.Logger) (*jwt.Service, error) {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= 0 {
		return nil, errs.Newf("JWT token durations must be positive (access=%s refresh=%s)",
			cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	}
	if cfg.JWT.RefreshTokenDuration < cfg.JWT.AccessTokenDuration {
		return nil, errs.New("JWT_REFRESH_TOKEN_DURATION must not be shorter than JWT_ACCESS_TOKEN_DURATION")
	}
	if len(cfg.JWT.Secret) < minSecretBytes {
		logger.Warn("JWT_SECRETが短すぎます", "bytes", len(cfg.JWT.Secret), "recommended", minSecretBytes)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}
