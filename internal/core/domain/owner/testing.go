package owner

import (
	"context"
	c "reemind/internal/core/domain/common"
	"sync"
	"time"
)

type TestRepository struct {
	Owners      map[c.Email]Owner
	UpsertError error
	nextID      ID
	lock        sync.Mutex
}

func NewTestRepository() *TestRepository {
	return &TestRepository{Owners: make(map[c.Email]Owner)}
}

func (r *TestRepository) Upsert(ctx context.Context, input UpsertInput) (o Owner, err error) {
	if r.UpsertError != nil {
		return o, r.UpsertError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if existing, ok := r.Owners[input.Email]; ok {
		existing.LastLoginAt = input.Now
		r.Owners[input.Email] = existing
		return existing, nil
	}
	r.nextID++
	o = Owner{
		ID:          r.nextID,
		Email:       input.Email,
		Verified:    true,
		CreatedAt:   input.Now,
		LastLoginAt: input.Now,
	}
	r.Owners[input.Email] = o
	return o, nil
}

func (r *TestRepository) GetByEmail(ctx context.Context, email c.Email) (o Owner, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if existing, ok := r.Owners[email]; ok {
		return existing, nil
	}
	return o, ErrOwnerDoesNotExist
}

type TestSessionRepository struct {
	Sessions    map[SessionToken]c.Email
	CreateError error
	lock        sync.Mutex
}

func NewTestSessionRepository() *TestSessionRepository {
	return &TestSessionRepository{Sessions: make(map[SessionToken]c.Email)}
}

func (r *TestSessionRepository) Create(
	ctx context.Context,
	token SessionToken,
	email c.Email,
	validFor time.Duration,
) error {
	if r.CreateError != nil {
		return r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Sessions[token] = email
	return nil
}

func (r *TestSessionRepository) GetEmailByToken(ctx context.Context, token SessionToken) (c.Email, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	email, ok := r.Sessions[token]
	if !ok {
		return email, ErrSessionDoesNotExist
	}
	return email, nil
}

func (r *TestSessionRepository) Delete(ctx context.Context, token SessionToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Sessions, token)
	return nil
}

type TestLoginCodeRepository struct {
	Codes        map[c.Email]LoginCode
	CreateError  error
	ConsumeError error
	lock         sync.Mutex
}

func NewTestLoginCodeRepository() *TestLoginCodeRepository {
	return &TestLoginCodeRepository{Codes: make(map[c.Email]LoginCode)}
}

func (r *TestLoginCodeRepository) Create(
	ctx context.Context,
	email c.Email,
	code LoginCode,
	validFor time.Duration,
) error {
	if r.CreateError != nil {
		return r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Codes[email] = code
	return nil
}

func (r *TestLoginCodeRepository) Consume(ctx context.Context, email c.Email, code LoginCode) error {
	if r.ConsumeError != nil {
		return r.ConsumeError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	stored, ok := r.Codes[email]
	if !ok || stored != code {
		return ErrLoginCodeInvalid
	}
	delete(r.Codes, email)
	return nil
}

type TestLoginCodeSender struct {
	Sent      []LoginCode
	SentTo    []c.Email
	SendError error
	lock      sync.Mutex
}

func NewTestLoginCodeSender() *TestLoginCodeSender {
	return &TestLoginCodeSender{}
}

func (s *TestLoginCodeSender) SendLoginCode(ctx context.Context, email c.Email, code LoginCode) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, code)
	s.SentTo = append(s.SentTo, email)
	return nil
}

type TestSessionTokenGenerator struct {
	Token SessionToken
}

func NewTestSessionTokenGenerator(token SessionToken) *TestSessionTokenGenerator {
	return &TestSessionTokenGenerator{Token: token}
}

func (g *TestSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return g.Token
}

type TestLoginCodeGenerator struct {
	Code LoginCode
}

func NewTestLoginCodeGenerator(code LoginCode) *TestLoginCodeGenerator {
	return &TestLoginCodeGenerator{Code: code}
}

func (g *TestLoginCodeGenerator) GenerateLoginCode() LoginCode {
	return g.Code
}
