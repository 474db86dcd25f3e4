package defs

const (
	EPERM       Err_t = 1
	ESRCH       Err_t = 3
	EINTR       Err_t = 4
	EAGAIN      Err_t = 11
	EWOULDBLOCK       = EAGAIN
	ENOMEM      Err_t = 12
	EACCES      Err_t = 13
	EFAULT      Err_t = 14
	EBUSY       Err_t = 16
	EINVAL      Err_t = 22
	EDEADLK     Err_t = 35
	ENOSYS      Err_t = 38
)

type Err_t int
