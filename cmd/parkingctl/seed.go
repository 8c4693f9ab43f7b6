package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/usecase/demo"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/db"
)

const (
	seedTopup         = 1000
	seedPaymentUPI    = "upi"
	seedPaymentWallet = "wallet"
)

var seedUsers = []entity.User{
	{RFIDID: "ADMIN001", UserName: "Admin User", VehicleNo: "ADMIN-CAR-001", WalletBalance: 10000, Contact: "+919999999999", Email: "admin@parking.com"},
	{RFIDID: "RFID001", UserName: "John Doe", VehicleNo: "MH-12-AB-1234", WalletBalance: 500, Contact: "+919876543210", Email: "john@example.com"},
	{RFIDID: "RFID002", UserName: "Jane Smith", VehicleNo: "MH-14-CD-5678", WalletBalance: 750, Contact: "+919876543211", Email: "jane@example.com"},
	{RFIDID: "RFID003", UserName: "Ravi Kumar", VehicleNo: "KA-01-EF-9012", WalletBalance: 300, Contact: "+919876543212", Email: "ravi@example.com"},
	{RFIDID: "RFID004", UserName: "Priya Shah", VehicleNo: "GJ-05-GH-3456", WalletBalance: 1200, Contact: "+919876543213", Email: "priya@example.com"},
}

var seedSlots = []string{"SLOT_A1", "SLOT_A2", "SLOT_A3", "SLOT_B1", "SLOT_B2", "SLOT_B3"}

type seedCounts struct {
	users, sessions, transactions, skipped int
}

func newSeedCmd(flags *globalFlags) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users, completed sessions and wallet transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := flags.openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			counts, err := seed(cmd.Context(), database, time.Now(), days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			green.Fprintf(out, "seeded %d users, %d sessions, %d transactions\n", counts.users, counts.sessions, counts.transactions)

			if counts.skipped > 0 {
				gray.Fprintf(out, "%d rows already present\n", counts.skipped)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "days of session history to generate")

	return cmd
}

// seed is idempotent: rows are keyed by stable ids and existing ones are
// skipped.
func seed(ctx context.Context, database *db.SQL, now time.Time, days int) (seedCounts, error) {
	log := cliLogger()
	users := sqldb.NewUserRepo(database, log)
	sessions := sqldb.NewSessionRepo(database, log)
	transactions := sqldb.NewTransactionRepo(database, log)

	var counts seedCounts

	record := func(err error, n *int) error {
		var notUnique sqldb.NotUniqueError

		switch {
		case err == nil:
			*n++
		case errors.As(err, &notUnique):
			counts.skipped++
		default:
			return err
		}

		return nil
	}

	for i := range seedUsers {
		u := seedUsers[i]
		u.IsActive = true
		u.CreatedAt = now.AddDate(0, 0, -days).Unix()

		if err := record(users.Insert(ctx, &u), &counts.users); err != nil {
			return counts, err
		}

		topup := &entity.Transaction{
			TransactionID:   fmt.Sprintf("SEED_TOPUP_%s", u.RFIDID),
			RFIDID:          u.RFIDID,
			Amount:          seedTopup,
			TransactionType: entity.TransactionTypeTopup,
			BalanceBefore:   u.WalletBalance - seedTopup,
			BalanceAfter:    u.WalletBalance,
			PaymentMethod:   seedPaymentUPI,
			Status:          "completed",
			Timestamp:       u.CreatedAt,
		}

		if err := record(transactions.Insert(ctx, topup), &counts.transactions); err != nil {
			return counts, err
		}
	}

	for d := days; d >= 1; d-- {
		for i, u := range seedUsers[1:] {
			entry := now.AddDate(0, 0, -d).Add(time.Duration(i) * time.Hour)
			stay := time.Duration(30+45*i) * time.Minute
			exit := entry.Add(stay).Unix()
			charge := demo.Charge(stay, demo.DefaultPerHourRate, demo.DefaultMinimumFare)

			s := &entity.Session{
				SessionID:     fmt.Sprintf("SEED_%s_%d", u.RFIDID, d),
				RFIDID:        u.RFIDID,
				VehicleNo:     u.VehicleNo,
				SlotID:        seedSlots[(d+i)%len(seedSlots)],
				EntryTime:     entry.Unix(),
				ExitTime:      &exit,
				AmountCharged: charge,
				Status:        entity.SessionStatusCompleted,
			}

			if err := record(sessions.Insert(ctx, s), &counts.sessions); err != nil {
				return counts, err
			}

			deduction := &entity.Transaction{
				TransactionID:   "SEED_TXN_" + s.SessionID,
				RFIDID:          u.RFIDID,
				Amount:          charge,
				TransactionType: entity.TransactionTypeDeduction,
				BalanceBefore:   u.WalletBalance + charge,
				BalanceAfter:    u.WalletBalance,
				SessionID:       s.SessionID,
				PaymentMethod:   seedPaymentWallet,
				Status:          "completed",
				Timestamp:       exit,
			}

			if err := record(transactions.Insert(ctx, deduction), &counts.transactions); err != nil {
				return counts, err
			}
		}
	}

	return counts, nil
}
