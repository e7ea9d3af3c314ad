package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campusshare/campusshare/internal/app/models/dto"
)

var registerCmd = &cobra.Command{
	Use:   "register [name] [email]",
	Short: "Register a new student",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegister,
}

var addCmd = &cobra.Command{
	Use:   "add [student-id] [type] [name]",
	Short: "List a resource for lending or giveaway",
	Long:  `Lists a resource owned by the student. Type is one of book, notes, hardware.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runAdd,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search available resources by free text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var transactCmd = &cobra.Command{
	Use:   "transact [resource-id] [provider-id] [receiver-id]",
	Short: "Record an exchange and credit the provider",
	Args:  cobra.ExactArgs(3),
	RunE:  runTransact,
}

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "List redeemable rewards",
	RunE:  runRewards,
}

var redeemCmd = &cobra.Command{
	Use:   "redeem [student-id] [reward-id]",
	Short: "Redeem a reward with experience points",
	Args:  cobra.ExactArgs(2),
	RunE:  runRedeem,
}

// Flags for the add and search commands.
var (
	addDescription  string
	addStatus       string
	addCost         float64
	searchThreshold float64
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Resource description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "lending", "Listing status: lending or giveaway")
	addCmd.Flags().Float64VarP(&addCost, "cost", "c", 0, "Cost (0 for free)")
	searchCmd.Flags().Float64VarP(&searchThreshold, "threshold", "t", -1, "Similarity cutoff; server default when unset")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(transactCmd)
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(redeemCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	client := newAPIClient(serverURL)
	resp, err := client.registerStudent(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Registered successfully! Your ID is: %d\n", resp.StudentID)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	studentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid student ID %q", args[0])
	}

	client := newAPIClient(serverURL)
	message, resp, err := client.addResource(dto.AddResourceRequest{
		StudentID:   studentID,
		Type:        args[1],
		Name:        args[2],
		Description: addDescription,
		Status:      addStatus,
		Cost:        addCost,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s (resource %d)\n", message, resp.ResourceID)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	client := newAPIClient(serverURL)

	var threshold *float64
	if cmd.Flags().Changed("threshold") {
		threshold = &searchThreshold
	}

	matches, err := client.searchResources(args[0], threshold)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No matching resources found.")
		return nil
	}

	fmt.Println("Found matching resources:")
	for i, match := range matches {
		r := match.Resource
		fmt.Printf("\n%d. Similarity: %.2f\n", i+1, match.Similarity)
		fmt.Printf("   [%d] %s (%s, %s)\n", r.ID, r.Name, r.Type, r.Status)
		if r.Description != "" {
			fmt.Printf("   %s\n", r.Description)
		}
		fmt.Printf("   Cost: $%.2f\n", r.Cost)
		fmt.Printf("   Owner: %s <%s>\n", r.OwnerName, r.OwnerEmail)
	}
	return nil
}

func runTransact(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 3)
	for i, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q", arg)
		}
		ids[i] = id
	}

	client := newAPIClient(serverURL)
	resp, err := client.processTransaction(ids[0], ids[1], ids[2])
	if err != nil {
		return err
	}
	fmt.Printf("Transaction successful! Provider earned %d points!\n", resp.Points)
	return nil
}

func runRewards(cmd *cobra.Command, args []string) error {
	client := newAPIClient(serverURL)
	rewards, err := client.listRewards()
	if err != nil {
		return err
	}

	fmt.Println("Available Rewards:")
	for _, reward := range rewards {
		fmt.Printf("\n[%d] %s (%d points)\n", reward.ID, reward.Name, reward.PointsRequired)
		if reward.Description != "" {
			fmt.Printf("    %s\n", reward.Description)
		}
	}
	return nil
}

func runRedeem(cmd *cobra.Command, args []string) error {
	studentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid student ID %q", args[0])
	}
	rewardID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reward ID %q", args[1])
	}

	client := newAPIClient(serverURL)
	resp, err := client.redeemReward(studentID, rewardID)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully redeemed %s!\n", resp.RewardName)
	return nil
}
