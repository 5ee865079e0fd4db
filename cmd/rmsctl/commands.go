package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-engine/infrastructure/database/migrations"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações pendentes do schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			migrator, err := migrations.NewMigrator(a.conn)
			if err != nil {
				return fmt.Errorf("erro ao carregar migrações: %w", err)
			}

			applied, err := migrator.Up(cmd.Context())
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema já atualizado")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migrações aplicadas: %s\n", strings.Join(applied, ", "))
			return nil
		},
	}
}

func ForecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Calcula a previsão de demanda de uma categoria",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, date, err := readCategoryDate(cmd, time.Now())
			if err != nil {
				return err
			}
			store, _ := cmd.Flags().GetBool("store")

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			forecast := a.forecaster.Forecast
			if store {
				forecast = a.forecaster.ForecastAndStore
			}

			result, err := forecast(cmd.Context(), category, date, a.cfg.Forecasting.UseModel)
			if err != nil {
				return err
			}

			printJSON(cmd, result)
			return nil
		},
	}

	categoryDateFlags(cmd)
	cmd.Flags().Bool("store", false, "Grava a previsão calculada")

	return cmd
}

func PriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Calcula o preço recomendado de uma categoria",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, date, err := readCategoryDate(cmd, time.Now())
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			quote, err := a.pricer.Price(cmd.Context(), category, date, nil)
			if err != nil {
				return err
			}

			printJSON(cmd, quote)
			return nil
		},
	}

	categoryDateFlags(cmd)

	return cmd
}

func RepriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reprice",
		Short: "Executa uma reprecificação completa e termina",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			run, err := a.repricingSync().RunOnce(cmd.Context())
			if run != nil {
				printJSON(cmd, run)
			}
			return err
		},
	}
}

func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Gerencia clientes da API",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Cria um cliente e imprime o segredo gerado",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			roleID, _ := cmd.Flags().GetInt("role")

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			client, secret, err := authenticating.RegisterClient(cmd.Context(), a.clients, name, roleID)
			if err != nil {
				return err
			}

			printJSON(cmd, map[string]any{
				"client_id":     client.ClientID,
				"client_secret": secret,
				"name":          client.Name,
				"role_id":       client.RoleID,
			})
			return nil
		},
	}

	create.Flags().String("name", "", "Nome do cliente")
	create.Flags().Int("role", domain.RoleAnalyst, "Role: 1 admin, 2 gerente de receita, 3 analista")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)
	return cmd
}
