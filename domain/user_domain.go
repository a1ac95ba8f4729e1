package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessRefresh        = "token refreshed"
	MessageSuccessLogout         = "logged out"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessDeleteAccount  = "account deleted"
	MessageSuccessSendCode       = "verification code sent"
	MessageSuccessVerifyCode     = "verification code confirmed"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessUploadImage    = "profile image uploaded successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedRefresh       = "failed to refresh token"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedDeleteAccount = "failed to delete account"
	MessageFailedSendCode      = "failed to send verification code"
	MessageFailedVerifyCode    = "failed to verify code"
	MessageFailedResetPassword = "failed to reset password"
	MessageFailedUploadImage   = "failed to upload profile image"

	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrCredentialsInvalid  = errors.New("invalid id or password")
	ErrRefreshInvalid      = errors.New("refresh token invalid")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrVerificationInvalid = errors.New("verification code invalid or expired")
)

type (
	RegisterRequest struct {
		ID           string `json:"id" validate:"required,min=4,max=64"`
		UserName     string `json:"user_name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=8"`
		Gender       string `json:"gender" validate:"omitempty,oneof=M F"`
		DateOfBirth  string `json:"date_of_birth" validate:"omitempty"`
		Goal         int    `json:"goal" validate:"omitempty,min=0,max=21"`
		CookingLevel string `json:"cooking_level" validate:"required,oneof=상 중 하"`
	}

	LoginRequest struct {
		ID       string `json:"id" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		UserID       string `json:"user_id"`
		UserName     string `json:"user_name"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}

	RefreshRequest struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	ProfileResponse struct {
		UserID       string `json:"user_id"`
		UserName     string `json:"user_name"`
		Email        string `json:"email"`
		Gender       string `json:"gender"`
		DateOfBirth  string `json:"date_of_birth"`
		Goal         int    `json:"goal"`
		CookingLevel string `json:"cooking_level"`
		ImageURL     string `json:"image_url,omitempty"`
	}

	UpdateProfileRequest struct {
		UserName     string `json:"user_name" validate:"omitempty"`
		Email        string `json:"email" validate:"omitempty,email"`
		Goal         int    `json:"goal" validate:"omitempty,min=0,max=21"`
		CookingLevel string `json:"cooking_level" validate:"omitempty,oneof=상 중 하"`
	}

	DeleteAccountRequest struct {
		Password        string `json:"password" validate:"required"`
		PasswordConfirm string `json:"password_confirm" validate:"required"`
	}

	SendCodeRequest struct {
		Purpose string `json:"purpose" validate:"required,oneof=signup reset"`
		Email   string `json:"email" validate:"required,email"`
	}

	VerifyCodeRequest struct {
		Purpose string `json:"purpose" validate:"required,oneof=signup reset"`
		Email   string `json:"email" validate:"required,email"`
		Code    string `json:"code" validate:"required,len=6"`
	}

	ResetPasswordRequest struct {
		Email       string `json:"email" validate:"required,email"`
		Code        string `json:"code" validate:"required,len=6"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
