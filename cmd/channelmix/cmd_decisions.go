package main

import (
	"context"

	"channelmix/internal"
	"channelmix/internal/domain"
	"channelmix/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	decisionsRunID  string
	decisionsStatus string
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Inspect and act on stored budget decisions",
}

var decisionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored decisions, optionally filtered by run or status",
	RunE:  runDecisionsList,
}

var decisionsApplyCmd = &cobra.Command{
	Use:   "apply <decision-id>",
	Short: "Mark a pending decision as applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateStatus(args[0], domain.DecisionStatus_Applied)
	},
}

var decisionsRejectCmd = &cobra.Command{
	Use:   "reject <decision-id>",
	Short: "Mark a pending decision as rejected",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateStatus(args[0], domain.DecisionStatus_Rejected)
	},
}

func init() {
	rootCmd.AddCommand(decisionsCmd)
	decisionsCmd.AddCommand(decisionsListCmd)
	decisionsCmd.AddCommand(decisionsApplyCmd)
	decisionsCmd.AddCommand(decisionsRejectCmd)
	decisionsListCmd.Flags().StringVar(&decisionsRunID, "run-id", "", "Only decisions from this run")
	decisionsListCmd.Flags().StringVar(&decisionsStatus, "status", "", "Only decisions with this status (pending, applied, rejected)")
}

func runDecisionsList(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	filter := repository.DecisionListFilter{}
	if decisionsRunID != "" {
		filter.RunID = &decisionsRunID
	}
	if decisionsStatus != "" {
		status, err := domain.NewDecisionStatus(decisionsStatus)
		if err != nil {
			return err
		}
		filter.Status = status
	}

	decisions, err := e.DecisionRepository.List(filter)
	if err != nil {
		return err
	}

	internal.Pprint(decisions)
	return nil
}

func updateStatus(rawID string, status domain.DecisionStatus) error {
	decisionID, err := uuid.Parse(rawID)
	if err != nil {
		return err
	}

	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	out, err := e.DecisionApp.UpdateDecisionStatus(context.Background(), decisionID, status)
	if err != nil {
		return err
	}

	internal.Pprint(out)
	return nil
}
