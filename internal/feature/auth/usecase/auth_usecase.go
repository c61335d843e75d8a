package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"loomspace_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// dummyHash はユーザーが存在しない場合にbcrypt比較を実行するためのハッシュです。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// List は全ユーザーを作成日時の降順で返します。
	List(ctx context.Context) ([]entity.User, error)

	// Delete はユーザーとそのレビューを削除します。
	// 注文を持つユーザーの場合、ErrUserHasOrdersを返します。
	Delete(ctx context.Context, id string) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID, role string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// hashPassword はbcryptでパスワードをハッシュ化します。
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// createUser はパスワードを検証・ハッシュ化し、指定ロールのユーザーを作成します。
func (u *authUsecase) createUser(ctx context.Context, email, password, name string, role entity.Role) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:    strings.TrimSpace(email),
		Name:     strings.TrimSpace(name),
		Password: hashed,
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// issueToken はユーザーのIDとロールを含むJWTトークンを生成します。
func (u *authUsecase) issueToken(user *entity.User) (string, error) {
	token, err := u.jwtGenerator.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Register はCUSTOMERロールで新規ユーザーを登録し、ログイン済みトークンを返します。
func (u *authUsecase) Register(ctx context.Context, email, password, name string) (string, *entity.User, error) {
	user, err := u.createUser(ctx, email, password, name, entity.RoleCustomer)
	if err != nil {
		return "", nil, err
	}
	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CreateAdmin はADMINロールのユーザーを作成します。管理者の初期作成コマンドから使用されます。
func (u *authUsecase) CreateAdmin(ctx context.Context, email, password, name string) (*entity.User, error) {
	return u.createUser(ctx, email, password, name, entity.RoleAdmin)
}

// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ListUsers は全ユーザーを新しい順で返します。
func (u *authUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// DeleteUser は管理者actorIDによるユーザー削除を行います。自分自身は削除できません。
func (u *authUsecase) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrCannotDeleteSelf
	}
	return u.users.Delete(ctx, id)
}
