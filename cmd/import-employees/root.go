package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"wfh-leave-backend/internal/adapter/importer"
	"wfh-leave-backend/internal/adapter/repository/gormrepo"
	"wfh-leave-backend/internal/config"
	"wfh-leave-backend/internal/infrastructure/db"
	"wfh-leave-backend/internal/infrastructure/logging"
	ucemployee "wfh-leave-backend/internal/usecase/employee"
)

type globalOpts struct {
	envFile string
	migrate bool
}

func newRootCmd() *cobra.Command {
	g := &globalOpts{}
	var file string

	root := &cobra.Command{
		Use:   "import-employees --file employees.csv",
		Short: "Load the employee directory from a CSV or XLSX export",
		Long: "Reads Staff_ID, Staff_FName, Staff_LName, Dept, Position, Country, Email,\n" +
			"Reporting_Manager and Role columns and stores every row in one transaction.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, g, file)
		},
	}
	root.Flags().StringVarP(&file, "file", "f", "", "path to a .csv or .xlsx file")
	_ = root.MarkFlagRequired("file")
	root.PersistentFlags().StringVar(&g.envFile, "env-file", "", "env file to load before reading the environment (default .env)")
	root.PersistentFlags().BoolVar(&g.migrate, "migrate", false, "create or update the schema first")

	root.AddCommand(newAutoRejectCmd(g))
	return root
}

// connect loads config, installs the logger and opens the database.
func connect(g *globalOpts) (*config.Config, *gorm.DB, error) {
	var files []string
	if g.envFile != "" {
		files = append(files, g.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.SlogLevel(), cfg.IsProduction()))
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if g.migrate {
		if err := db.Migrate(gdb); err != nil {
			_ = db.Close(gdb)
			return nil, nil, err
		}
	}
	return cfg, gdb, nil
}

func runImport(cmd *cobra.Command, g *globalOpts, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := importer.Parse(path, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	_, gdb, err := connect(g)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	uc := ucemployee.NewUsecase(gormrepo.NewGormUoW(gdb), gormrepo.NewEmployeeRepository(gdb))
	res, err := uc.Import(cmd.Context(), rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d employees from %s\n", res.Imported, path)
	return nil
}
