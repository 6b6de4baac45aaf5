package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kdam/portfolio/internal/bootstrap"
	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/database"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/services"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

var (
	userLogin    string
	userPassword string
	userName     string
	userMail     string
	userAdmin    bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userName == "" {
			userName = userLogin
		}
		form := forms.UserAddForm{
			Login:          userLogin,
			Password:       userPassword,
			SecondPassword: userPassword,
			Name:           userName,
			Mail:           userMail,
		}
		if err := validateUserForm(&form); err != nil {
			return err
		}

		if err := bootstrap.New().WithConfig(configPath).Prepare(); err != nil {
			return err
		}
		defer database.Close()

		users := repository.NewUserRepository(database.DB, services.NewBcryptHasher())
		ctx := cmd.Context()
		if !users.LoginUnique(ctx, userLogin) {
			return fmt.Errorf("login %q already exists", userLogin)
		}

		role := constant.RoleUserID
		if userAdmin {
			role = constant.RoleAdminID
		}
		user := &models.User{
			Login:  form.Login,
			RoleID: role,
			Info:   models.UserInfo{Name: form.Name, Mail: form.Mail},
		}
		if err := users.Save(ctx, user, form.Password); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %s created (id %d)\n", user.Login, user.ID)
		return nil
	},
}

// validateUserForm 使用与注册表单相同的规则校验命令行参数
func validateUserForm(form *forms.UserAddForm) error {
	forms.Setup()
	errs := forms.FieldErrors(binding.Validator.ValidateStruct(form))
	if len(errs) == 0 {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errs[field].Message("en")))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func init() {
	userCreateCmd.Flags().StringVar(&userLogin, "login", "", "登录名 (6-100 个字符)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "密码 (至少 8 个字符)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "显示名称")
	userCreateCmd.Flags().StringVar(&userMail, "mail", "", "邮箱")
	userCreateCmd.Flags().BoolVar(&userAdmin, "admin", false, "授予管理员角色")
	_ = userCreateCmd.MarkFlagRequired("login")
	_ = userCreateCmd.MarkFlagRequired("password")
	_ = userCreateCmd.MarkFlagRequired("mail")
	userCmd.AddCommand(userCreateCmd)
}
