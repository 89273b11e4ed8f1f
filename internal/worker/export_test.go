package worker

// Workers exposes the worker count to the external test package.
func (d *NotificationDispatcher) Workers() int { return d.workers }

// QueueCap exposes the job queue capacity to the external test package.
func (d *NotificationDispatcher) QueueCap() int { return cap(d.jobs) }
