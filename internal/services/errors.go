package services

import "errors"

var (
	ErrEmailTaken         = errors.New("e-mail já cadastrado")
	ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")
	ErrInvalidToken       = errors.New("refresh token inválido ou expirado")
	ErrUserNotFound       = errors.New("usuário não encontrado")

	ErrProjectNotFound  = errors.New("projeto não encontrado")
	ErrTaskNotFound     = errors.New("tarefa não encontrada")
	ErrCommentNotFound  = errors.New("comentário não encontrado")
	ErrTimelineNotFound = errors.New("evento de timeline não encontrado")

	ErrInvalidDate = errors.New("data inválida")
)

// InvalidDateError carries the name of the date field that failed to parse
// so handlers can report it under the right key. It matches ErrInvalidDate
// under errors.Is.
type InvalidDateError struct {
	Field string
}

func (e *InvalidDateError) Error() string {
	return "data inválida: " + e.Field
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
