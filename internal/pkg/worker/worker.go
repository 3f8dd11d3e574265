package worker

import (
	"time"

	"food_delivery_api/internal/domain/promo/model"
	"food_delivery_api/internal/domain/promo/repository"
	"food_delivery_api/pkg/logger"

	"go.uber.org/zap"
)

// PromoTask 优惠券领取落库任务
// Redis 预扣减成功后异步写数据库
type PromoTask struct {
	UserID  string
	PromoID string
	Retry   int // 重试次数
}

type WorkerPool struct {
	TaskQueue  chan PromoTask
	RetryQueue chan PromoTask // 重试队列
	Repo       repository.PromoRepository
	WorkerNum  int
	MaxRetry   int // 最大重试次数
}

func NewWorkerPool(repo repository.PromoRepository, workerNum int, bufferSize int) *WorkerPool {
	return &WorkerPool{
		TaskQueue:  make(chan PromoTask, bufferSize),
		RetryQueue: make(chan PromoTask, bufferSize/2),
		Repo:       repo,
		WorkerNum:  workerNum,
		MaxRetry:   3, // 最多重试3次
	}
}

func (p *WorkerPool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		go p.worker(i)
	}
	// 启动重试处理协程
	go p.retryWorker()
	logger.Log.Info("Worker pool started", zap.Int("workers", p.WorkerNum))
}

func (p *WorkerPool) worker(id int) {
	for task := range p.TaskQueue {
		if err := p.processTask(task); err != nil {
			logger.Log.Error("Failed to process promo task",
				zap.Int("worker", id),
				zap.String("user_id", task.UserID),
				zap.String("promo_id", task.PromoID),
				zap.Error(err))

			// 如果未达到最大重试次数，加入重试队列
			if task.Retry < p.MaxRetry {
				task.Retry++
				select {
				case p.RetryQueue <- task:
				default:
					p.logFailedTask(task, err)
				}
			} else {
				p.logFailedTask(task, err)
			}
		}
	}
}

func (p *WorkerPool) retryWorker() {
	for task := range p.RetryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(task.Retry) * time.Second)

		// 重新加入主队列
		select {
		case p.TaskQueue <- task:
		default:
			p.logFailedTask(task, nil)
		}
	}
}

func (p *WorkerPool) processTask(task PromoTask) error {
	// 执行数据库写入操作
	if err := p.Repo.DecreaseStock(task.PromoID); err != nil {
		return err
	}

	userPromo := &model.UserPromo{
		UserID:  task.UserID,
		PromoID: task.PromoID,
		Status:  model.UserPromoUnused,
	}

	return p.Repo.CreateUserPromo(userPromo)
}

func (p *WorkerPool) logFailedTask(task PromoTask, err error) {
	// Redis 已扣减但落库失败，留日志供人工对账
	logger.Log.Error("Promo task failed permanently",
		zap.String("user_id", task.UserID),
		zap.String("promo_id", task.PromoID),
		zap.Error(err))
}

func (p *WorkerPool) AddTask(task PromoTask) {
	select {
	case p.TaskQueue <- task:
		// 任务入队成功
	default:
		p.logFailedTask(task, nil)
	}
}
