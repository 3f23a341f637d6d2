package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"wfh-leave-backend/internal/adapter/repository/gormrepo"
	"wfh-leave-backend/internal/infrastructure/cache"
	"wfh-leave-backend/internal/infrastructure/db"
	"wfh-leave-backend/internal/usecase/autoreject"
)

func newAutoRejectCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "auto-reject",
		Short: "Cancel pending WFH requests applied for more than two months ago",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, gdb, err := connect(g)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(gdb) }()

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			opts := []autoreject.Option{autoreject.WithLocation(loc)}
			if cfg.RedisAddr != "" {
				rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
				if err != nil {
					return err
				}
				defer func() { _ = rdb.Close() }()
				opts = append(opts, autoreject.WithRunLock(cache.NewRedisLocker(rdb), cfg.AutoRejectLockTTL))
			}

			res, err := autoreject.NewUsecase(gormrepo.NewGormUoW(gdb), opts...).Run(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}
