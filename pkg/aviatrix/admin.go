package aviatrix

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CloudType identifies a cloud provider in controller calls. Values can be
// OR'd together where an action accepts multiple providers.
type CloudType int

const (
	CloudTypeAWS         CloudType = 1
	CloudTypeAzure       CloudType = 2
	CloudTypeGCP         CloudType = 4
	CloudTypeARM         CloudType = 8
	CloudTypeAWSGovCloud CloudType = 256
	CloudTypeAzureChina  CloudType = 512
	CloudTypeAWSChina    CloudType = 1024
	CloudTypeARMChina    CloudType = 2048
)

// SetAdminEmail sets the administrator email address on the controller.
func (c *Client) SetAdminEmail(ctx context.Context, email string) error {
	params := url.Values{}
	params.Set("admin_email", email)
	_, err := c.call(ctx, http.MethodGet, "add_admin_email_addr", params, endpointAPI)
	return err
}

// ChangePassword changes the password of a user in the given cloud account.
func (c *Client) ChangePassword(ctx context.Context, account, username, oldPassword, newPassword string) error {
	params := url.Values{}
	params.Set("account_name", account)
	params.Set("user_name", username)
	params.Set("old_password", oldPassword)
	params.Set("password", newPassword)
	_, err := c.call(ctx, http.MethodGet, "change_password", params, endpointAPI)
	return err
}

// InitialSetup performs the controller's initial setup action. The
// subaction is either "run" or "check".
func (c *Client) InitialSetup(ctx context.Context, subaction string) error {
	params := url.Values{}
	params.Set("subaction", subaction)
	_, err := c.call(ctx, http.MethodPost, "initial_setup", params, endpointAPI)
	return err
}

// AccountProfile describes a cloud account to onboard onto the controller.
type AccountProfile struct {
	AccountName      string    `json:"account_name" validate:"required"`
	CloudType        CloudType `json:"cloud_type" validate:"required"`
	AWSAccountNumber string    `json:"aws_account_number" validate:"required"`
	AWSRoleARN       string    `json:"aws_role_arn" validate:"required"`
	AWSRoleEC2       string    `json:"aws_role_ec2" validate:"required"`
}

// SetupAccountProfile onboards a new cloud account. IAM role based access is
// always requested for AWS accounts.
func (c *Client) SetupAccountProfile(ctx context.Context, profile AccountProfile) error {
	if err := c.validate.Struct(profile); err != nil {
		return ErrConfiguration.MsgErr("invalid account profile", err)
	}
	params := url.Values{}
	params.Set("account_name", profile.AccountName)
	params.Set("cloud_type", strconv.Itoa(int(profile.CloudType)))
	params.Set("aws_iam", "true")
	params.Set("aws_account_number", profile.AWSAccountNumber)
	params.Set("aws_role_arn", profile.AWSRoleARN)
	params.Set("aws_role_ec2", profile.AWSRoleEC2)
	_, err := c.call(ctx, http.MethodPost, "setup_account_profile", params, endpointAPI)
	return err
}

// SetupCustomerID sets the customer license ID on the controller. Only
// needed for BYOL installations.
func (c *Client) SetupCustomerID(ctx context.Context, customerID string) error {
	params := url.Values{}
	params.Set("customer_id", customerID)
	_, err := c.call(ctx, http.MethodGet, "setup_customer_id", params, endpointAPI)
	return err
}

// GetControllerPublicIP returns the controller's public IP address.
func (c *Client) GetControllerPublicIP(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("public", "yes")
	res, err := c.call(ctx, http.MethodPost, "show_controller_ip", params, endpointBackend)
	if err != nil {
		return "", err
	}
	ip := res.Get("public_ip").String()
	if ip == "" {
		return "", ErrUnexpectedResponse.New("controller IP response did not include public_ip")
	}
	return ip, nil
}

// ListAccounts lists all cloud accounts configured on the controller.
func (c *Client) ListAccounts(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_accounts", url.Values{}, endpointAPI)
}
