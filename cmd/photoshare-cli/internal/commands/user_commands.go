package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/app"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates account administration via CLI.
type UserCommandHandler struct {
	userService func() (users.UserService, error)
	logger      logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance.
// The user service is built against the configured database on first use.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	handler := &UserCommandHandler{logger: loggerInstance}
	handler.userService = func() (users.UserService, error) {
		db, err := openDatabase()
		if err != nil {
			return nil, err
		}

		userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
		if err != nil {
			return nil, fmt.Errorf("failed to create user repository: %w", err)
		}

		return app.NewUserService(userRepo, loggerInstance)
	}
	return handler, nil
}

func (commandHandler *UserCommandHandler) lookup(cmd *cobra.Command) (users.UserService, *users.User, error) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid email flag: %w", err)
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil, errors.New("--email is required")
	}

	service, err := commandHandler.userService()
	if err != nil {
		return nil, nil, err
	}

	user, err := service.GetByEmail(cmd.Context(), email)
	if err != nil {
		return nil, nil, err
	}
	return service, user, nil
}

// ChangeRoleCmd assigns the role given by --role to the user with --email
func (commandHandler *UserCommandHandler) ChangeRoleCmd(cmd *cobra.Command, _ []string) error {
	roleName, err := cmd.Flags().GetString("role")
	if err != nil {
		commandHandler.logger.Error("invalid role flag ", err)
		return err
	}
	role := users.Role(strings.ToLower(strings.TrimSpace(roleName)))
	if !role.IsValid() {
		err := fmt.Errorf("%w: %s", users.ErrInvalidRole, roleName)
		commandHandler.logger.Error(err)
		return err
	}

	service, user, err := commandHandler.lookup(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	updated, err := service.ChangeRole(cmd.Context(), user.ID, role)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("User ", updated.Email, " now has role ", updated.Role)
	return nil
}

// BlockCmd blocks the user with --email
func (commandHandler *UserCommandHandler) BlockCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.setBlocked(cmd, true)
}

// UnblockCmd unblocks the user with --email
func (commandHandler *UserCommandHandler) UnblockCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.setBlocked(cmd, false)
}

func (commandHandler *UserCommandHandler) setBlocked(cmd *cobra.Command, blocked bool) error {
	service, user, err := commandHandler.lookup(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	updated, err := service.SetBlocked(cmd.Context(), user.ID, blocked)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	state := "unblocked"
	if updated.IsBlocked {
		state = "blocked"
	}
	commandHandler.logger.Info("User ", updated.Email, " is ", state)
	return nil
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	rootCmd.AddCommand(newUsersCmd(handler))
	return nil
}

func newUsersCmd(handler *UserCommandHandler) *cobra.Command {
	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts",
	}

	var roleCmd = &cobra.Command{
		Use:   "role",
		Short: "Change the role of a user (admin, moderator, user)",
		RunE:  handler.ChangeRoleCmd,
	}
	roleCmd.Flags().StringP("email", "", "", "Email of the target user")
	roleCmd.Flags().StringP("role", "", string(users.RoleUser), "Role to assign")
	usersCmd.AddCommand(roleCmd)

	var blockCmd = &cobra.Command{
		Use:   "block",
		Short: "Block a user",
		RunE:  handler.BlockCmd,
	}
	blockCmd.Flags().StringP("email", "", "", "Email of the target user")
	usersCmd.AddCommand(blockCmd)

	var unblockCmd = &cobra.Command{
		Use:   "unblock",
		Short: "Unblock a user",
		RunE:  handler.UnblockCmd,
	}
	unblockCmd.Flags().StringP("email", "", "", "Email of the target user")
	usersCmd.AddCommand(unblockCmd)

	return usersCmd
}
